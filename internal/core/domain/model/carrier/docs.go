// Package carrier contains the Carrier aggregate: a transport provider's
// declared profile (fleet, coverage countries, service radius, cargo box and
// equipment). The matching pipeline reads carriers but never mutates them.
package carrier
