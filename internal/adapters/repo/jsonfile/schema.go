package jsonfile

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/bnema/pool-cli/internal/domain"
)

const currentSchemaVersion = 1

// recordSchema is stored as the positional array
// [version, white, black, whiteRight, freeRight].
type recordSchema struct {
	Version    int
	White      []string
	Black      []string
	WhiteRight float64
	FreeRight  float64
}

func (r recordSchema) MarshalJSON() ([]byte, error) {
	white := r.White
	if white == nil {
		white = []string{}
	}
	black := r.Black
	if black == nil {
		black = []string{}
	}

	return json.Marshal([]any{r.Version, white, black, int(r.WhiteRight), int(r.FreeRight)})
}

func (r *recordSchema) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) == 0 {
		return fmt.Errorf("record is an empty array")
	}
	if err := json.Unmarshal(fields[0], &r.Version); err != nil {
		return fmt.Errorf("decode version: %w", err)
	}
	if r.Version != currentSchemaVersion {
		return nil
	}
	if len(fields) != 5 {
		return fmt.Errorf("record has %d fields, want 5", len(fields))
	}

	targets := []any{&r.White, &r.Black, &r.WhiteRight, &r.FreeRight}
	names := []string{"white set", "black set", "white right", "free right"}
	for i, target := range targets {
		if err := json.Unmarshal(fields[i+1], target); err != nil {
			return fmt.Errorf("decode %s: %w", names[i], err)
		}
	}

	return nil
}

func (r recordSchema) validateVersion() error {
	if r.Version != currentSchemaVersion {
		return fmt.Errorf("%w: found %d (current %d)", domain.ErrVersionMismatch, r.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(state domain.State) recordSchema {
	return recordSchema{
		Version:    currentSchemaVersion,
		White:      state.White.Strings(),
		Black:      state.Black.Strings(),
		WhiteRight: float64(state.Rights.White),
		FreeRight:  float64(state.Rights.Free),
	}
}

func fromSchema(schema recordSchema) (domain.State, error) {
	rights := domain.Rights{
		White: int(math.Trunc(schema.WhiteRight)),
		Free:  int(math.Trunc(schema.FreeRight)),
	}
	if err := rights.Validate(); err != nil {
		return domain.State{}, err
	}

	return domain.State{
		White:  domain.ItemSetFromStrings(schema.White),
		Black:  domain.ItemSetFromStrings(schema.Black),
		Rights: rights,
	}, nil
}
