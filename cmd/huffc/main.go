// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huffc compresses and decompresses text with a Huffman prefix
// code, carrying the code tree inside the output so decompression needs no
// side channel.
//
// Example usage:
//
//	$ huffc story.txt story.huff
//	$ huffc -d story.huff story.txt
//	$ echo hello | huffc | huffc -d
//
// The -v flag additionally writes the constructed tree to huffman_tree.dot
// in Graphviz format when compressing.
package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/bitpress/compress/huffman"
)

const graphFile = "huffman_tree.dot"

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var decompress, visualise bool
	cmd := &cobra.Command{
		Use:   "huffc [infile [outfile]]",
		Short: "Huffman compression, decompression and visualisation",
		Long: "Huffman compression, decompression and visualisation.\n" +
			"Compression by default, decompression with -d and visualisation with -v.\n" +
			"Reads from stdin and writes to stdout unless files are given.",
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, decompress, visualise)
		},
	}
	cmd.Flags().BoolVarP(&decompress, "decompress", "d", false,
		"decompress instead of compress (other options work the same)")
	cmd.Flags().BoolVarP(&visualise, "visualise", "v", false,
		"write the tree to "+graphFile+" in Graphviz format (compression only)")
	return cmd
}

func run(args []string, decompress, visualise bool) (err error) {
	var in io.Reader = os.Stdin
	if len(args) >= 1 && args[0] != "" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	var out io.Writer = os.Stdout
	if len(args) >= 2 && args[1] != "" {
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	var output []byte
	if decompress {
		bits, tree, err := huffman.Unpack(data)
		if err != nil {
			return err
		}
		text, err := huffman.Decompress(bits, tree)
		if err != nil {
			return err
		}
		output = []byte(text)
	} else {
		text := string(data)
		if !utf8.ValidString(text) {
			return fmt.Errorf("huffc: input is not valid UTF-8 text")
		}
		tree, err := huffman.Build(huffman.Analyze(text))
		if err != nil {
			return err
		}
		bits, err := tree.Compress(text)
		if err != nil {
			return err
		}
		output, err = huffman.Pack(bits, tree)
		if err != nil {
			return err
		}
		if visualise {
			if werr := os.WriteFile(graphFile, []byte(tree.Graph().String()), 0666); werr != nil {
				return werr
			}
		}
	}

	_, err = out.Write(output)
	return err
}
