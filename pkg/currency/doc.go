// Package currency converts prices between the supported currencies.
//
// Every rate is expressed relative to the reference currency (dollar). A
// conversion always pivots through the reference currency:
//
//	target = amount * Rate(from) * Rate(to)
//
// By default an unknown currency code silently resolves to the reference
// rate. Tables created with WithStrict report ErrUnknownCurrency instead.
package currency
