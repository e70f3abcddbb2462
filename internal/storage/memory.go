package storage

import (
	"context"
	"sort"
	"sync"

	"sporos/internal/model"
)

type genomeKey struct {
	populationID string
	id           uint32
}

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	genomes     map[genomeKey]model.GenomeRecord
	populations map[string]model.PopulationRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.genomes = make(map[genomeKey]model.GenomeRecord)
	s.populations = make(map[string]model.PopulationRecord)
	return nil
}

func (s *MemoryStore) SaveGenome(_ context.Context, populationID string, genome model.GenomeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.genomes[genomeKey{populationID, genome.ID}] = genome
	return nil
}

func (s *MemoryStore) GetGenome(_ context.Context, populationID string, id uint32) (model.GenomeRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	genome, ok := s.genomes[genomeKey{populationID, id}]
	return genome, ok, nil
}

func (s *MemoryStore) SavePopulation(_ context.Context, population model.PopulationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.populations[population.ID] = population
	return nil
}

func (s *MemoryStore) GetPopulation(_ context.Context, id string) (model.PopulationRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	population, ok := s.populations[id]
	return population, ok, nil
}

func (s *MemoryStore) DeletePopulation(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.populations, id)
	for key := range s.genomes {
		if key.populationID == id {
			delete(s.genomes, key)
		}
	}
	return nil
}

func (s *MemoryStore) ListPopulations(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.populations))
	for id := range s.populations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
