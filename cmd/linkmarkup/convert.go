package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/riverfjs/linkmarkup-go"
	"github.com/riverfjs/linkmarkup-go/internal/codec"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] [file]",
	Short: "Convert label markup to plain text and link entities",
	Long: `Convert flattens label markup into plain text plus link entities whose
offsets are UTF-16 code units. With --max-length the text is split into chunks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("format", "json", "output format (pretty|json|msgpack)")
	convertCmd.Flags().Int("max-length", 0, "split text into chunks of at most this many UTF-16 code units (0 = no split)")
}

type jsonChunk struct {
	Text     string              `json:"text"`
	Entities []linkmarkup.Entity `json:"entities"`
}

type jsonConvertResult struct {
	Chunks   []jsonChunk `json:"chunks"`
	Mnemonic int         `json:"mnemonic"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := prepare(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	in, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	opts := cfg.options()
	text, entities, mnemonic := linkmarkup.ConvertWithMnemonic(in.Text, opts...)
	chunks := []linkmarkup.TextChunk{{Text: text, Entities: entities}}
	if cfg.MaxLength > 0 {
		chunks = linkmarkup.Split(in.Text, cfg.MaxLength, opts...)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		writeChunksPretty(out, chunks)
		return nil
	case "json":
		return writeChunksJSON(out, chunks, mnemonic)
	case "msgpack":
		for i, chunk := range chunks {
			if err := codec.Encode(out, codec.Record{Text: chunk.Text, Entities: chunk.Entities}); err != nil {
				return fmt.Errorf("chunk %d: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeChunksPretty(w io.Writer, chunks []linkmarkup.TextChunk) {
	for i, chunk := range chunks {
		if len(chunks) > 1 {
			fmt.Fprintf(w, "--- chunk %d (%d UTF-16) ---\n", i, linkmarkup.UTF16Len(chunk.Text))
		}
		fmt.Fprintln(w, chunk.Text)
		for _, e := range chunk.Entities {
			fmt.Fprintf(w, "  %s [%d+%d] %s\n", e.Type, e.Offset, e.Length, linkColor.Sprint(e.URL))
		}
	}
}

func writeChunksJSON(w io.Writer, chunks []linkmarkup.TextChunk, mnemonic int) error {
	payload := jsonConvertResult{Chunks: make([]jsonChunk, 0, len(chunks)), Mnemonic: mnemonic}
	for _, chunk := range chunks {
		entities := chunk.Entities
		if entities == nil {
			entities = []linkmarkup.Entity{}
		}
		payload.Chunks = append(payload.Chunks, jsonChunk{Text: chunk.Text, Entities: entities})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
