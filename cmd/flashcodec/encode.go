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
	"github.com/flashwire/flashcodec/pkg/codecerrors"
	"github.com/flashwire/flashcodec/pkg/wirecol"
)

// wireEnvelope is the CLI's on-disk representation of an encoded wire
// column: the concatenated fixed/variable-length payload, the bytes
// offsets vector (string columns only), and the null bitmap, all
// produced by a single EncodeColumn call.
type wireEnvelope struct {
	BytesHex      string  `json:"bytes_hex"`
	Offsets       []int32 `json:"offsets,omitempty"`
	NullCount     int     `json:"null_count"`
	NullBitmapHex string  `json:"null_bitmap_hex"`
	Length        int     `json:"length"`
}

func newEncodeCmd() *cobra.Command {
	var fixturePath, outPath string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a column fixture (engine side) into a wire column",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFixture(fixturePath)
			if err != nil {
				return err
			}
			field, err := f.field()
			if err != nil {
				return err
			}

			mem := memory.NewGoAllocator()
			col, err := buildEngineColumn(mem, f)
			if err != nil {
				return err
			}

			log := logger.WithContext(cmd.Context()).With(zap.String("column", f.Name))
			timer := metrics.NewTimer("encode", f.ElementType)

			dst := wirecol.NewBuffer()
			err = codec.EncodeColumn(col, field, dst, 0, col.Len())
			timer.Stop()
			if err != nil {
				metrics.ConversionErrors.WithLabelValues("encode", string(kindOf(err))).Inc()
				log.Error("encode failed", zap.Error(err))
				return err
			}
			metrics.RowsConverted.WithLabelValues("encode", f.ElementType).Add(float64(col.Len()))

			env := wireEnvelope{
				BytesHex:      hex.EncodeToString(dst.Bytes()),
				Offsets:       dst.Offsets(),
				NullCount:     dst.NullCount(),
				NullBitmapHex: hex.EncodeToString(packNullBitmap(dst)),
				Length:        dst.Len(),
			}

			out, err := json.MarshalIndent(env, "", "  ")
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Println(string(out))
				return nil
			}
			return os.WriteFile(outPath, out, 0o644)
		},
	}

	cmd.Flags().StringVar(&fixturePath, "fixture", "", "path to a column fixture JSON file (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the wire envelope JSON (default: stdout)")
	_ = cmd.MarkFlagRequired("fixture")
	return cmd
}

func kindOf(err error) codecerrors.Kind {
	for _, k := range []codecerrors.Kind{codecerrors.KindTypeMismatch, codecerrors.KindNotImplemented, codecerrors.KindLogicalError} {
		if codecerrors.Is(err, k) {
			return k
		}
	}
	return "unknown"
}
