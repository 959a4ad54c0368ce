package services

import (
	"math/rand"

	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/pkg/errs"
)

// RandomPolicy picks a candidate uniformly at random. The random source is
// injected so tests can seed it for deterministic selection.
type RandomPolicy struct {
	rnd *rand.Rand
}

// NewRandomPolicy creates a RandomPolicy over the given source.
func NewRandomPolicy(rnd *rand.Rand) (RandomPolicy, error) {
	if rnd == nil {
		return RandomPolicy{}, errs.NewValueIsRequiredError("rnd")
	}
	return RandomPolicy{rnd: rnd}, nil
}

// Select returns a uniformly random candidate.
func (p RandomPolicy) Select(candidates []*organization.Organization) (*organization.Organization, error) {
	if len(candidates) == 0 {
		return nil, errs.NewNoCandidateAvailableError("candidates")
	}
	return candidates[p.rnd.Intn(len(candidates))], nil
}
