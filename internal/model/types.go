package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// ConnectionRecord is the persisted form of one connection gene. Weights are
// stored as float64 regardless of the genome's working precision; widening
// from float32 is exact.
type ConnectionRecord struct {
	ID     uint32  `json:"id"`
	Source int32   `json:"source"`
	Target int32   `json:"target"`
	Weight float64 `json:"weight"`
}

type GenomeRecord struct {
	VersionedRecord
	ID          uint32             `json:"id"`
	Birth       uint32             `json:"birth_generation"`
	Connections []ConnectionRecord `json:"connections"`
}

// PopulationRecord carries the topology spec, the genome membership, and the
// cursors of both id sequences so a reloaded population keeps allocating
// where it stopped.
type PopulationRecord struct {
	VersionedRecord
	ID               string   `json:"id"`
	Inputs           int      `json:"inputs"`
	Outputs          int      `json:"outputs"`
	WeightMin        float64  `json:"weight_min"`
	WeightMax        float64  `json:"weight_max"`
	Acyclic          bool     `json:"acyclic"`
	Precision        string   `json:"precision"`
	NextGenomeID     uint32   `json:"next_genome_id"`
	NextInnovationID uint32   `json:"next_innovation_id"`
	GenomeIDs        []uint32 `json:"genome_ids"`
}
