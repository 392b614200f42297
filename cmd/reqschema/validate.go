package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/reqschema/pkg/httpapi"
	"github.com/dmitrymomot/reqschema/pkg/logger"
	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// errRejected makes the process exit non-zero after the errors were printed.
var errRejected = errors.New("payload rejected")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate ENTITY VARIANT [FILE]",
		Short: "Validate a JSON payload",
		Long: `Validate a JSON payload read from FILE (or stdin when FILE is omitted
or "-") against the schema of ENTITY and VARIANT.

The normalized values or the full error list are printed as JSON; the exit
status is non-zero when the payload is rejected. Write-only fields are never
printed. The output and stats variants project a JSON object onto the
entity's response shape instead of validating it.`,
		Example: `  reqschema validate category create payload.json
  echo '{"name":"Gas"}' | reqschema validate category create
  reqschema validate scraper_access output record.json`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 3 && args[2] != "-" {
				f, err := os.Open(args[2])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return a.validate(cmd.OutOrStdout(), in, args[0], args[1])
		},
	}
}

func (a *app) validate(out io.Writer, in io.Reader, entity, variant string) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	reg, err := a.registry()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	v := httpapi.ParseVariant(variant)
	if v == schema.VariantOutput || v == schema.VariantStats {
		src, ok := payload.(map[string]any)
		if !ok {
			return httpapi.ErrNotObject
		}
		projected, err := reg.Project(entity, v, src)
		if err != nil {
			return err
		}
		return enc.Encode(httpapi.Envelope{Data: projected})
	}

	s, err := reg.Schema(entity, v)
	if err != nil {
		return err
	}
	res := s.Validate(payload)
	if !res.Valid() {
		a.log.Debug("payload rejected",
			logger.Entity(entity),
			logger.Variant(variant),
			logger.ErrorCount(len(res.Errors)),
		)
		if err := enc.Encode(httpapi.Envelope{Errors: res.Errors}); err != nil {
			return err
		}
		return errRejected
	}
	return enc.Encode(httpapi.Envelope{Data: s.Redact(res.Values)})
}
