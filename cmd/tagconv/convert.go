package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"type-transformer/composite"
	"type-transformer/internal/config"
)

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [file]",
		Short: "Re-encode a tagged document in another format",
		Long: `Decode the input with --from, restore its tagged values, then dump and
encode them again with --to. Reads stdin when no file is given.

Examples:
  tagconv convert doc.json --to yaml
  cat doc.msgpack | tagconv convert --from msgpack --to json`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runConvert,
	}
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	c, err := a.registry()
	if err != nil {
		return err
	}

	v, err := c.Parse(data)
	if err != nil {
		return err
	}

	to, err := config.SerializerFor(a.cfg.To)
	if err != nil {
		return err
	}

	out, err := c.WithOptions(composite.WithSerializer(to))
	if err != nil {
		return err
	}

	encoded, err := out.Stringify(v)
	if err != nil {
		return err
	}

	if to.Name() == "json" && !bytes.HasSuffix(encoded, []byte("\n")) {
		encoded = append(encoded, '\n')
	}

	if _, err := cmd.OutOrStdout().Write(encoded); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	a.log.Info("converted",
		zap.String("from", a.cfg.From),
		zap.String("to", a.cfg.To),
		zap.Int("bytes_in", len(data)),
		zap.Int("bytes_out", len(encoded)))

	return nil
}
