package queries

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/rider"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ErrSearchSuperseded is returned when a newer zone search was issued while
// this one was still running. The stale result must be discarded, never
// rendered.
var ErrSearchSuperseded = errors.New("search superseded by a newer one")

// FindRidersByZoneQueryHandler searches riders by delivery location.
//
// The repository zone search is the primary path. When it fails, the
// handler falls back to fetching the full active snapshot and filtering it
// locally with the rider matcher, so a broken search index degrades the
// experience instead of breaking the shipping form. The result records
// which path produced it.
//
// Overlapping searches are sequenced: only the most recently issued one
// may deliver its result, the rest return ErrSearchSuperseded.
type FindRidersByZoneQueryHandler struct {
	riderRepo ports.RiderRepository
	matcher   services.RiderMatcher
	sequencer *SearchSequencer
	logger    *slog.Logger
}

// NewFindRidersByZoneQueryHandler creates a handler for zone searches.
func NewFindRidersByZoneQueryHandler(riderRepo ports.RiderRepository, logger *slog.Logger) FindRidersByZoneQueryHandler {
	return FindRidersByZoneQueryHandler{
		riderRepo: riderRepo,
		matcher:   services.NewRiderMatcher(),
		sequencer: NewSearchSequencer(),
		logger:    logger.With("component", "find_riders_by_zone"),
	}
}

// Handle executes the zone search.
// An empty result is reported through NoRidersFound, not an error.
func (h FindRidersByZoneQueryHandler) Handle(
	ctx context.Context,
	query FindRidersByZoneQuery,
) (FindRidersByZoneResult, error) {
	if err := query.Validate(); err != nil {
		return FindRidersByZoneResult{}, err
	}

	seq := h.sequencer.Begin()

	riders, source, err := h.search(ctx, query.Location())
	if err != nil {
		return FindRidersByZoneResult{}, err
	}

	if !h.sequencer.StillCurrent(seq) {
		return FindRidersByZoneResult{}, ErrSearchSuperseded
	}

	summaries := make([]RiderSummary, 0, len(riders))
	for _, r := range riders {
		summaries = append(summaries, summarizeRider(r))
	}

	return FindRidersByZoneResult{
		Riders:        summaries,
		Source:        source,
		NoRidersFound: len(summaries) == 0,
	}, nil
}

func (h FindRidersByZoneQueryHandler) search(ctx context.Context, location string) ([]*rider.Rider, string, error) {
	riders, err := h.riderRepo.FindByZone(ctx, location)
	if err == nil {
		return riders, SourceServer, nil
	}

	h.logger.WarnContext(ctx, "zone search failed, falling back to local filtering",
		"location", location, "error", err)

	snapshot, err := h.riderRepo.GetAllActive(ctx)
	if err != nil {
		return nil, "", err
	}

	return h.matcher.Match(snapshot, location), SourceLocalFallback, nil
}

func summarizeRider(r *rider.Rider) RiderSummary {
	zones := make([]string, 0, len(r.Zones()))
	for _, zone := range r.Zones() {
		zones = append(zones, zone.Label())
	}

	return RiderSummary{
		ID:              r.ID().Int64(),
		Name:            r.Name(),
		Phone:           r.Phone(),
		VehicleType:     r.VehicleType().WireName(),
		VehicleNumber:   r.VehicleNumber(),
		Zones:           zones,
		TotalDeliveries: r.TotalDeliveries(),
	}
}
