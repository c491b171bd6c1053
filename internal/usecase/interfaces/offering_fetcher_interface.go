package interfaces

import (
	"context"
	"skip_selector/internal/domain/entities"
)

// IOfferingFetcher abstracts the remote skip listing.
//
// Implementations issue a single request per call, never cache, and report
// every failure (transport, status, decoding) as one generic fetch error.
type IOfferingFetcher interface {
	FetchOfferingsFor(ctx context.Context, postcode, area string) ([]entities.Offering, error)
}
