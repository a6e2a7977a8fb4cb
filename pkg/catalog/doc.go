// Package catalog holds the fixed lookup tables for basic ingredients and
// pineapple varieties. Each table is keyed by a closed enumeration and maps
// to a value; lookups of enumeration members never fail.
package catalog
