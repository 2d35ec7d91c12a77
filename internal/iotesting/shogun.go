package iotesting

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gnames/gnshogun/pkg/artifact"
)

// Call is a recorded invocation of an external program.
type Call struct {
	Name string
	Args []string
}

// FakeShogun emulates SHOGUN subcommands by writing the files real
// SHOGUN would produce. It implements iorunner.Runner.
type FakeShogun struct {
	// Calls are all invocations in order.
	Calls []Call
	// FailOn makes the given subcommand fail.
	FailOn string
	// Malformed makes produced tables unparsable.
	Malformed bool
	// SkipOutput makes subcommands succeed without writing tables.
	SkipOutput bool
	// Staged holds entries of the database directory seen by the first
	// call.
	Staged []string
	// StageDir is the database directory seen by the first call.
	StageDir string
	// Metadata is the content of metadata.yaml seen by the first call.
	Metadata string

	query string
}

// Features produced for each table kind.
var (
	TaxaFeatures = []string{
		"k__Bacteria;p__Proteobacteria;c__Gammaproteobacteria",
		"k__Bacteria;p__Firmicutes;c__Bacilli",
	}
	KEGGFeatures    = []string{"K00001", "K00002", "K00003"}
	ModuleFeatures  = []string{"M00001"}
	PathwayFeatures = []string{"map00010", "map00020"}
)

// Run implements iorunner.Runner.
func (f *FakeShogun) Run(_ context.Context, name string, args ...string) error {
	f.Calls = append(f.Calls, Call{Name: name, Args: slices.Clone(args)})
	if len(args) == 0 {
		return errors.New("fake shogun: no subcommand")
	}
	sub := args[0]
	flags := parseFlags(args[1:])

	if len(f.Calls) == 1 {
		f.snapshot(flags["-d"])
	}
	if sub == f.FailOn {
		return fmt.Errorf("fake shogun: %s exited with status 1", sub)
	}

	switch sub {
	case "align":
		f.query = flags["-i"]
		sam := filepath.Join(flags["-o"], "alignment.bowtie2.sam")
		return os.WriteFile(sam, []byte("@HD\tVN:1.0\n"), 0644)
	case "assign_taxonomy":
		if f.SkipOutput {
			return nil
		}
		samples, err := querySamples(f.query)
		if err != nil {
			return err
		}
		return f.writeTable(flags["-o"], TaxaFeatures, samples)
	case "pipeline":
		if f.SkipOutput {
			return nil
		}
		samples, err := querySamples(flags["-i"])
		if err != nil {
			return err
		}
		out := flags["-o"]
		tables := []struct {
			file  string
			feats []string
		}{
			{"taxatable.strain.txt", TaxaFeatures},
			{"taxatable.strain.kegg.txt", KEGGFeatures},
			{"taxatable.strain.kegg.modules.txt", ModuleFeatures},
			{"taxatable.strain.kegg.pathways.txt", PathwayFeatures},
		}
		for _, v := range tables {
			err = f.writeTable(filepath.Join(out, v.file), v.feats, samples)
			if err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("fake shogun: unknown subcommand %s", sub)
}

// Subcommands returns the first argument of every call.
func (f *FakeShogun) Subcommands() []string {
	var res []string
	for _, v := range f.Calls {
		if len(v.Args) > 0 {
			res = append(res, v.Args[0])
		}
	}
	return res
}

func (f *FakeShogun) snapshot(dir string) {
	f.StageDir = dir
	es, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range es {
		f.Staged = append(f.Staged, e.Name())
	}
	meta, err := os.ReadFile(filepath.Join(dir, "metadata.yaml"))
	if err == nil {
		f.Metadata = string(meta)
	}
}

// Count is the value the fake writes for a feature and a sample.
func Count(feature, sample int) int {
	if (feature+sample)%3 == 2 {
		return 0
	}
	return (feature + 1) * (sample + 2)
}

func (f *FakeShogun) writeTable(path string, feats, samples []string) error {
	var sb strings.Builder
	sb.WriteString("#OTU ID\t" + strings.Join(samples, "\t") + "\n")
	for i, feat := range feats {
		sb.WriteString(feat)
		for j := range samples {
			if f.Malformed {
				sb.WriteString("\tn/a")
				continue
			}
			fmt.Fprintf(&sb, "\t%d", Count(i, j))
		}
		sb.WriteString("\n")
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func parseFlags(args []string) map[string]string {
	res := make(map[string]string)
	for i := 0; i+1 < len(args); i += 2 {
		res[args[i]] = args[i+1]
	}
	return res
}

func querySamples(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var res []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, ">") {
			continue
		}
		name := strings.Fields(line[1:])[0]
		sample := artifact.SampleID(name)
		if !slices.Contains(res, sample) {
			res = append(res, sample)
		}
	}
	return res, sc.Err()
}
