package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/vecmath"
)

type backendInfo struct {
	Accelerated bool     `json:"accelerated" yaml:"accelerated"`
	Features    []string `json:"features" yaml:"features"`
}

type infoView struct {
	CPU      cpu.Report        `json:"cpu" yaml:"cpu"`
	Bindings []vecmath.Binding `json:"bindings" yaml:"bindings"`
	Vek32    backendInfo       `json:"vek32" yaml:"vek32"`
}

func collectInfo() infoView {
	report := cpu.NewReport()
	vi := vek32.Info()
	vecmath.Bind()
	return infoView{
		CPU:      report,
		Bindings: vecmath.Variants(),
		Vek32: backendInfo{
			Accelerated: vi.Acceleration,
			Features:    vi.CPUFeatures,
		},
	}
}

func newInfoCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the detected SIMD level and variant bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeInfo(cmd.OutOrStdout(), collectInfo(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func writeInfo(w io.Writer, v infoView, format string) error {
	switch strings.ToLower(format) {
	case "text":
		return writeInfoText(w, v)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func writeInfoText(w io.Writer, v infoView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	r := v.CPU

	fmt.Fprintf(tw, "Architecture\t%s\n", r.Architecture)
	fmt.Fprintf(tw, "CPU\t%s\n", r.Brand)
	fmt.Fprintf(tw, "Vendor\t%s\n", r.Vendor)
	fmt.Fprintf(tw, "Cores\t%d physical, %d logical\n", r.PhysicalCore, r.LogicalCores)
	fmt.Fprintf(tw, "Probed level\t%s\n", r.ProbedName)
	fmt.Fprintf(tw, "Active level\t%s\n", r.ActiveName)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Feature\tCPUID\tx/sys/cpu\n")
	fmt.Fprintf(tw, "-------\t-----\t---------\n")
	rows := []struct {
		name     string
		raw, sys bool
	}{
		{"SSE2", r.Raw.SSE2, r.System.SSE2},
		{"SSE4.2", r.Raw.SSE42, r.System.SSE42},
		{"OSXSAVE", r.Raw.OSXSAVE, r.System.OSXSAVE},
		{"AVX", r.Raw.AVX, r.System.AVX},
		{"AVX2", r.Raw.AVX2, r.System.AVX2},
		{"AVX-512F", r.Raw.AVX512F, r.System.AVX512F},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.name, yesNo(row.raw), yesNo(row.sys))
	}
	fmt.Fprintf(tw, "YMM state\t%s\t\n", yesNo(r.Raw.YMMEnabled))
	fmt.Fprintf(tw, "ZMM state\t%s\t\n", yesNo(r.Raw.ZMMEnabled))
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Operation\tBound variant\n")
	fmt.Fprintf(tw, "---------\t-------------\n")
	for _, b := range v.Bindings {
		fmt.Fprintf(tw, "%s\t%s\n", b.Op, b.Variant)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "vek32 acceleration\t%s\n", yesNo(v.Vek32.Accelerated))

	return tw.Flush()
}
