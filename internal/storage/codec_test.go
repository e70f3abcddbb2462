package storage

import (
	"errors"
	"testing"
)

func TestGenomeCodecRoundTrip(t *testing.T) {
	want := testGenome(3)
	data, err := EncodeGenome(want)
	if err != nil {
		t.Fatalf("EncodeGenome: %v", err)
	}

	got, err := DecodeGenome(data)
	if err != nil {
		t.Fatalf("DecodeGenome: %v", err)
	}
	if got.ID != want.ID || len(got.Connections) != len(want.Connections) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i, c := range want.Connections {
		if got.Connections[i] != c {
			t.Fatalf("connection %d: got %+v, want %+v", i, got.Connections[i], c)
		}
	}
}

func TestPopulationCodecRoundTrip(t *testing.T) {
	want := testPopulation("pop-x", 0, 1)
	data, err := EncodePopulation(want)
	if err != nil {
		t.Fatalf("EncodePopulation: %v", err)
	}

	got, err := DecodePopulation(data)
	if err != nil {
		t.Fatalf("DecodePopulation: %v", err)
	}
	if got.ID != want.ID || got.Precision != want.Precision ||
		got.NextGenomeID != want.NextGenomeID || got.NextInnovationID != want.NextInnovationID {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDecodeRejectsVersionMismatch(t *testing.T) {
	genome := testGenome(1)
	genome.SchemaVersion = CurrentSchemaVersion + 1
	data, err := EncodeGenome(genome)
	if err != nil {
		t.Fatalf("EncodeGenome: %v", err)
	}
	if _, err := DecodeGenome(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}

	population := testPopulation("pop-x")
	population.CodecVersion = CurrentCodecVersion + 1
	data, err = EncodePopulation(population)
	if err != nil {
		t.Fatalf("EncodePopulation: %v", err)
	}
	if _, err := DecodePopulation(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeGenome([]byte("not json")); err == nil {
		t.Fatal("expected decode error for invalid payload")
	}
	if _, err := DecodePopulation([]byte("{")); err == nil {
		t.Fatal("expected decode error for truncated payload")
	}
}
