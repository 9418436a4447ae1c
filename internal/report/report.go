// Package report renders benchmark results.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/xlab/treeprint"

	"github.com/achille-roussel/intersperse-go/internal/bench"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tree renders the results as a tree grouped by workload, highlighting the
// fastest mode of each workload.
func Tree(title string, results []bench.Result) string {
	tree := treeprint.NewWithRoot(color.New(color.Bold).Sprint(title))

	var branch treeprint.Tree
	var group []bench.Result
	flush := func() {
		if len(group) == 0 {
			return
		}
		fastest := 0
		for i, res := range group {
			if res.Median() < group[fastest].Median() {
				fastest = i
			}
		}
		for i, res := range group {
			label := string(res.Mode)
			if i == fastest && len(group) > 1 {
				label = color.GreenString(label)
			}
			node := branch.AddMetaBranch(label, stats(res))
			node.AddMetaNode("min", res.Min())
			node.AddMetaNode("max", res.Max())
			node.AddMetaNode("mean", res.Mean())
		}
		group = group[:0]
	}

	for _, res := range results {
		if len(group) == 0 || group[0].Workload != res.Workload {
			flush()
			branch = tree.AddBranch(color.CyanString(res.Workload))
		}
		group = append(group, res)
	}
	flush()

	return tree.String()
}

func stats(res bench.Result) string {
	return fmt.Sprintf("median %v, %s values/s, %s trials",
		res.Median().Round(time.Microsecond),
		humanize.Comma(int64(res.Throughput())),
		humanize.Comma(int64(len(res.Trials))),
	)
}

type jsonResult struct {
	bench.Result
	Min        time.Duration `json:"min"`
	Max        time.Duration `json:"max"`
	Mean       time.Duration `json:"mean"`
	Median     time.Duration `json:"median"`
	Throughput float64       `json:"throughput"`
}

// JSON writes the results and their statistics to w as an indented JSON
// array.
func JSON(w io.Writer, results []bench.Result) error {
	out := make([]jsonResult, len(results))
	for i, res := range results {
		out[i] = jsonResult{
			Result:     res,
			Min:        res.Min(),
			Max:        res.Max(),
			Mean:       res.Mean(),
			Median:     res.Median(),
			Throughput: res.Throughput(),
		}
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	b = append(b, '\n')

	_, err = w.Write(b)
	return err
}
