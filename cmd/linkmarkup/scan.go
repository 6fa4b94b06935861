package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/riverfjs/linkmarkup-go"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [file...]",
	Short: "Print the segments of label markup",
	Long:  `Scan splits each input into plain and link segments. Without files it reads stdin.`,
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().Bool("report", false, "also print dropped markup spans")
	scanCmd.Flags().Int("jobs", 4, "number of files scanned concurrently")
}

type scanResult struct {
	Name     string
	Input    string
	Segments []linkmarkup.Segment
	Discards []linkmarkup.Discard
}

type jsonSegment struct {
	Text   string  `json:"text"`
	Target *string `json:"target"`
}

type jsonDiscard struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Reason string `json:"reason"`
	Text   string `json:"text"`
}

type jsonScanResult struct {
	File     string        `json:"file"`
	Segments []jsonSegment `json:"segments"`
	Discards []jsonDiscard `json:"discards,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := prepare(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	report, err := cmd.Flags().GetBool("report")
	if err != nil {
		return fmt.Errorf("failed to get report flag: %w", err)
	}

	results, err := processInputs(cmd.Context(), cmd.InOrStdin(), args, cfg.Jobs, func(in input) scanResult {
		text := in.Text
		if cfg.Normalize {
			text = linkmarkup.Normalize(text)
		}
		segments, discards := linkmarkup.ScanReport(text)
		if cfg.Mnemonics {
			segments = linkmarkup.StripMnemonics(segments)
		}
		if cfg.LogDiscards {
			for _, d := range discards {
				linkmarkup.Logger.Printf("%s: dropped %s at [%d:%d]", in.Name, d.Reason, d.Start, d.End)
			}
		}
		return scanResult{Name: in.Name, Input: text, Segments: segments, Discards: discards}
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		for i, res := range results {
			if len(results) > 1 {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "==> %s <==\n", res.Name)
			}
			writeSegmentsPretty(out, res, report)
		}
		return nil
	case "json":
		return writeScanJSON(out, results, report)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

const textColumnWidth = 40

var (
	kindColor    = color.New(color.Faint)
	linkColor    = color.New(color.FgBlue, color.Underline)
	discardColor = color.New(color.FgYellow)
)

// writeSegmentsPretty 输出对齐的段落表格
func writeSegmentsPretty(w io.Writer, res scanResult, report bool) {
	for i, seg := range res.Segments {
		text := runewidth.Truncate(strconv.Quote(seg.Text), textColumnWidth, "...")
		text = runewidth.FillRight(text, textColumnWidth)
		if !seg.Link {
			fmt.Fprintf(w, "%3d %s %s\n", i, kindColor.Sprint("text"), text)
			continue
		}
		fmt.Fprintf(w, "%3d %s %s -> %s\n", i, kindColor.Sprint("link"), linkColor.Sprint(text), seg.Href())
	}
	if !report {
		return
	}
	for _, d := range res.Discards {
		fmt.Fprintln(w, discardColor.Sprintf("dropped %s [%d:%d] %q", d.Reason, d.Start, d.End, res.Input[d.Start:d.End]))
	}
}

func writeScanJSON(w io.Writer, results []scanResult, report bool) error {
	payload := make([]jsonScanResult, 0, len(results))
	for _, res := range results {
		item := jsonScanResult{File: res.Name, Segments: make([]jsonSegment, 0, len(res.Segments))}
		for _, seg := range res.Segments {
			js := jsonSegment{Text: seg.Text}
			if seg.Link {
				target := seg.Target
				js.Target = &target
			}
			item.Segments = append(item.Segments, js)
		}
		if report {
			for _, d := range res.Discards {
				item.Discards = append(item.Discards, jsonDiscard{
					Start:  d.Start,
					End:    d.End,
					Reason: d.Reason.String(),
					Text:   res.Input[d.Start:d.End],
				})
			}
		}
		payload = append(payload, item)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
