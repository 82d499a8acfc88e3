package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flashwire/flashcodec/internal/telemetry/logger"
	"github.com/flashwire/flashcodec/internal/telemetry/metrics"
	"github.com/flashwire/flashcodec/pkg/codec"
	"github.com/flashwire/flashcodec/pkg/wiretype"

	"github.com/flashwire/flashcodec/pkg/nullmap"
)

func newDecodeCmd() *cobra.Command {
	var fixturePath, envelopePath string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a wire envelope back into an engine column",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFixture(fixturePath)
			if err != nil {
				return err
			}
			field, err := f.field()
			if err != nil {
				return err
			}

			envData, err := os.ReadFile(envelopePath)
			if err != nil {
				return fmt.Errorf("read envelope %s: %w", envelopePath, err)
			}
			var env wireEnvelope
			if err := json.Unmarshal(envData, &env); err != nil {
				return fmt.Errorf("parse envelope %s: %w", envelopePath, err)
			}

			raw, err := hex.DecodeString(env.BytesHex)
			if err != nil {
				return fmt.Errorf("decode bytes_hex: %w", err)
			}
			bitmapBytes, err := hex.DecodeString(env.NullBitmapHex)
			if err != nil {
				return fmt.Errorf("decode null_bitmap_hex: %w", err)
			}
			bitmap := nullmap.Wrap(bitmapBytes, env.Length)

			mem := memory.NewGoAllocator()
			dst, err := buildEngineBuilder(mem, f)
			if err != nil {
				return err
			}

			log := logger.WithContext(cmd.Context()).With(zap.String("column", f.Name))
			timer := metrics.NewTimer("decode", f.ElementType)

			fieldLength := wiretype.FieldLength(field.Type)
			err = codec.DecodeColumn(raw, fieldLength, env.NullCount, bitmap, env.Offsets, dst, field, env.Length)
			timer.Stop()
			if err != nil {
				metrics.ConversionErrors.WithLabelValues("decode", string(kindOf(err))).Inc()
				log.Error("decode failed", zap.Error(err))
				return err
			}
			metrics.RowsConverted.WithLabelValues("decode", f.ElementType).Add(float64(env.Length))

			values, err := builderValues(dst)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(values, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&fixturePath, "fixture", "", "path to the column fixture JSON file describing the target type (required)")
	cmd.Flags().StringVar(&envelopePath, "envelope", "", "path to a wire envelope JSON file produced by encode (required)")
	_ = cmd.MarkFlagRequired("fixture")
	_ = cmd.MarkFlagRequired("envelope")
	return cmd
}
