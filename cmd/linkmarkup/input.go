package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"
)

const stdinName = "-"

type input struct {
	Name string
	Text string
}

func isStdin(path string) bool {
	return path == "" || path == stdinName
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(stdin io.Reader, path string) (input, error) {
	if isStdin(path) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return input{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return input{Name: stdinName, Text: string(data)}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return input{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return input{Name: path, Text: string(data)}, nil
}

// processInputs reads every path and runs fn on it with at most jobs
// running at once. Results keep the order of paths. Stdin is read once,
// before any worker starts, and shared by every "-" argument.
func processInputs[T any](ctx context.Context, stdin io.Reader, paths []string, jobs int, fn func(input) T) ([]T, error) {
	if len(paths) == 0 {
		paths = []string{stdinName}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var stdinInput *input
	if slices.ContainsFunc(paths, isStdin) {
		in, err := readInput(stdin, stdinName)
		if err != nil {
			return nil, err
		}
		stdinInput = &in
	}
	results := make([]T, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if isStdin(path) {
				results[i] = fn(*stdinInput)
				return nil
			}
			in, err := readInput(stdin, path)
			if err != nil {
				return err
			}
			results[i] = fn(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
