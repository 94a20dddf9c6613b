// Package match contains the CarrierRequest aggregate: the link between a
// shipment request and one matched carrier, carrying the invitation/offer
// lifecycle (New -> Sent -> Offered -> Won/Rejected) and the distances
// recorded by the matching run.
package match
