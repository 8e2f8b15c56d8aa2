package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexshd/resample"
)

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Faint(true).Width(16)
	valueStyle  = lipgloss.NewStyle().Bold(true)
	biasStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

func renderSummary(s resample.Summary) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Population"))
	b.WriteString("\n")
	row(&b, "N", fmt.Sprintf("%d", s.N))
	row(&b, "Mean", fmt.Sprintf("%.6f", s.Mean))
	row(&b, "StdDev", fmt.Sprintf("%.6f", s.StdDev))
	row(&b, "Min / Max", fmt.Sprintf("%.4f / %.4f", s.Min, s.Max))
	row(&b, "P50 / P95 / P99", fmt.Sprintf("%.4f / %.4f / %.4f", s.P50, s.P95, s.P99))
	return b.String()
}

func renderResult(r resample.SimulationResult, cfg resample.SimulationConfig) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Simulation"))
	b.WriteString("\n")
	row(&b, "Sample size", fmt.Sprintf("%d", cfg.SampleSize))
	row(&b, "Repetitions", fmt.Sprintf("%d", r.Repetitions))
	row(&b, "Avg estimate", fmt.Sprintf("%.6f", r.AverageEstimate))
	row(&b, "Population mean", fmt.Sprintf("%.6f", r.PopulationMean))
	row(&b, "Elapsed", r.Elapsed.String())
	b.WriteString(labelStyle.Render("Relative bias"))
	b.WriteString(biasStyle.Render(fmt.Sprintf("%+.4f%%", r.RelativeBias)))
	b.WriteString("\n")
	return b.String()
}

func renderSweep(points []resample.SweepPoint) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Convergence"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("n"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%12s %12s %12s", "bias%", "spread", "σ/√n")))
	b.WriteString("\n")
	for _, p := range points {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%d", p.SampleSize)))
		b.WriteString(fmt.Sprintf("%+12.4f %12.6f %12.6f", p.RelativeBias, p.EstimateStdDev, p.ExpectedStdErr))
		b.WriteString("\n")
	}
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}
