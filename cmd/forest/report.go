package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/viggieG/ID3-Random-Forest/dataset"
)

type predictor func(dataset.Example) (string, error)

// classResult holds how a model did on the examples of a class.
type classResult struct {
	Class    string
	Examples int
	Correct  int
	Failed   int
}

func (cr classResult) accuracy() float64 {
	if cr.Examples == 0 {
		return 0
	}
	return float64(cr.Correct) / float64(cr.Examples)
}

/*
evaluate predicts every example and returns the results per class in the
order classes are first encountered, followed by the totals.
*/
func evaluate(predict predictor, examples []dataset.Example) ([]classResult, classResult) {
	index := make(map[string]int)
	var results []classResult
	total := classResult{Class: "total"}
	for _, e := range examples {
		class := e[dataset.Class]
		i, ok := index[class]
		if !ok {
			i = len(results)
			index[class] = i
			results = append(results, classResult{Class: class})
		}
		results[i].Examples++
		total.Examples++
		p, err := predict(e)
		switch {
		case err != nil:
			results[i].Failed++
			total.Failed++
		case p == class:
			results[i].Correct++
			total.Correct++
		}
	}
	return results, total
}

func renderResults(w io.Writer, title string, results []classResult, total classResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Class", "Examples", "Correct", "No prediction", "Accuracy"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Class, r.Examples, r.Correct, r.Failed, fmt.Sprintf("%.4f", r.accuracy())})
	}
	t.AppendFooter(table.Row{total.Class, total.Examples, total.Correct, total.Failed, fmt.Sprintf("%.4f", total.accuracy())})
	t.Render()
}

func renderSummary(w io.Writer, title string, rows ...table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	for _, r := range rows {
		t.AppendRow(r)
	}
	t.Render()
}
