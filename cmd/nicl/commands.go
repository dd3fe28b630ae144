package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ni "github.com/tarantool/go-ni"
	"github.com/tarantool/go-ni/binform"
	"github.com/tarantool/go-ni/codec"
	"github.com/tarantool/go-ni/digest"
	"github.com/tarantool/go-ni/hasher"
)

const defaultChunk = 32 * 1024

func readFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path) //nolint:gosec // Path comes from the command line.
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return buf, nil
}

func (a *app) makeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "make <template> <file>",
		Short:   "Complete an ni or nih name template with the digest of a file",
		Example: "nicl make 'ni://example.com/sha-256;?ct=text/plain' README.md",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			buf, err := readFile(args[1])
			if err != nil {
				return err
			}

			name, err := a.binder.MakeName(args[0], buf)
			if err != nil {
				return err
			}

			return emit(a.printer, name, record{Name: name})
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "check <name> <file>",
		Short:   "Check that a name matches the contents of a file",
		Example: "nicl check 'nih:sha-256-32;2cf24dba;3' hello.txt",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			buf, err := readFile(args[1])
			if err != nil {
				return err
			}

			result, err := a.binder.CheckName(args[0], buf)
			if err != nil {
				return err
			}

			err = emit(a.printer, result.String(), record{Name: args[0], Result: result.String()})
			if err != nil {
				return err
			}

			if result != ni.MatchOK {
				a.logger.Warn("name doesn't match",
					zap.String("name", args[0]),
					zap.String("file", args[1]),
					zap.Stringer("result", result))

				return errMismatch
			}

			return nil
		},
	}
}

func (a *app) wellKnownCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "wku <template> <file>",
		Short:   "Complete a .well-known/ni URL template with the digest of a file",
		Example: "nicl wku http://example.com/.well-known/ni/sha-256/ README.md",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			buf, err := readFile(args[1])
			if err != nil {
				return err
			}

			url, err := a.binder.MakeWellKnown(args[0], buf)
			if err != nil {
				return err
			}

			return emit(a.printer, url, record{URL: url})
		},
	}
}

func (a *app) mapCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "map <name>",
		Short:   "Map an ni name to its .well-known/ni URL",
		Example: "nicl map 'ni://example.com/sha-256;LPJNul-wow4m6DsqxbninhsWHlwfp0JecwQzYpOLmCQ'",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			url, err := a.binder.MapNameToWellKnown(args[0])
			if err != nil {
				return err
			}

			return emit(a.printer, url, record{Name: args[0], URL: url})
		},
	}
}

func (a *app) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "convert <name>",
		Short:   "Convert an ni name to nih and a nih name to ni",
		Example: "nicl convert 'ni:///sha-256-32;LPJNug'",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			convert := ni.ToNih
			if strings.HasPrefix(args[0], "nih:") {
				convert = ni.ToNi
			}

			name, err := convert(args[0])
			if err != nil {
				return err
			}

			return emit(a.printer, name, record{Name: name})
		},
	}
}

func (a *app) digestCommand() *cobra.Command {
	var (
		chunk  int
		expect string
	)

	cmd := &cobra.Command{
		Use:   "digest <alg-spec|url> <file>",
		Short: "Stream a file through an incremental digest session",
		Long: "The algorithm spec has the form <family>-<bits>[-<truncated bits>],\n" +
			"e.g. sha-256-32 or blake2b-512. A URL selects the algorithm named by\n" +
			"its last path segment.",
		Example: "nicl digest sha3-256 big.iso --expect Ophdp0_iJbIEXBcta9OQvYVfCG4-nVJbRr_iRRFDFTI",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			spec := args[0]
			if strings.Contains(spec, "/") {
				component, err := digest.FileComponent(spec)
				if err != nil {
					return fmt.Errorf("failed to take algorithm from url: %w", err)
				}

				spec = component
			}

			if chunk <= 0 {
				return fmt.Errorf("chunk must be positive, got %d", chunk)
			}

			return a.streamDigest(spec, args[1], chunk, expect)
		},
	}

	cmd.Flags().IntVar(&chunk, "chunk", defaultChunk, "read buffer size in bytes")
	cmd.Flags().StringVar(&expect, "expect", "", "expected base64url digest")

	return cmd
}

func (a *app) streamDigest(spec, path string, chunk int, expect string) error {
	session := digest.New(digest.WithLogger(a.logger))

	err := session.Init()
	if err != nil {
		return err
	}

	err = session.SelectAlgorithm(spec)
	if err != nil {
		return err
	}

	file, err := os.Open(path) //nolint:gosec // Path comes from the command line.
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, err = io.CopyBuffer(session, file, make([]byte, chunk))
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	encoded, _, err := session.Finalize()
	if err != nil {
		return err
	}

	rec := record{Algorithm: session.Params().String(), Digest: encoded}

	if expect == "" {
		return emit(a.printer, encoded, rec)
	}

	ok, err := session.CheckDigest(expect)
	if err != nil {
		return err
	}

	rec.Result = ni.MatchBad.String()
	if ok {
		rec.Result = ni.MatchOK.String()
	}

	err = emit(a.printer, rec.Result, rec)
	if err != nil {
		return err
	}

	if !ok {
		return errMismatch
	}

	return nil
}

func (a *app) binCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bin <suite> <file> | bin <name>",
		Short: "Print the binary form and multihash of a digest",
		Long: "With a suite id and a file the file is hashed. With a single ni or nih\n" +
			"name the digest it carries is used as is.",
		Example: "nicl bin 6 hello.txt\nnicl bin 'nih:sha-256-32;2cf24dba;3'",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			var (
				bin []byte
				err error
			)

			if len(args) == 1 {
				bin, err = binform.FromName(args[0])
			} else {
				bin, err = a.encodeFile(args[0], args[1])
			}

			if err != nil {
				return err
			}

			entry, sum, err := binform.Decode(bin)
			if err != nil {
				return err
			}

			mh, err := binform.MultihashString(entry, sum)
			if err != nil {
				return err
			}

			text := codec.Hex(bin)

			return emit(a.printer, text, record{
				Algorithm: entry.Token,
				Binary:    text,
				Multihash: mh,
			})
		},
	}
}

func (a *app) encodeFile(suiteText, path string) ([]byte, error) {
	suite, err := strconv.Atoi(suiteText)
	if err != nil {
		return nil, fmt.Errorf("invalid suite %q: %w", suiteText, err)
	}

	buf, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return binform.Encode(suite, buf)
}

func (a *app) algsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algs",
		Short: "List the algorithms usable in names and in digest sessions",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			entries := ni.Algorithms()
			rec := algorithmsRecord{
				Names:    make([]algorithmRecord, 0, len(entries)),
				Sessions: hasher.Primitives(),
			}

			lines := make([]string, 0, len(entries)+len(rec.Sessions))

			for _, entry := range entries {
				rec.Names = append(rec.Names, algorithmRecord{Token: entry.Token, Suite: entry.Suite, Bits: entry.Bits})
				lines = append(lines, entry.String())
			}

			for _, primitive := range rec.Sessions {
				lines = append(lines, primitive+" (session)")
			}

			return emit(a.printer, strings.Join(lines, "\n"), rec)
		},
	}
}
