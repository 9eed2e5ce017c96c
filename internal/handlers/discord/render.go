package discord

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/probably-dice/internal/models"
	"github.com/KirkDiggler/probably-dice/internal/probability"
	"github.com/KirkDiggler/probably-dice/internal/services/odds"
	"github.com/bwmarrin/discordgo"
)

const (
	// maxChartRows keeps distribution charts inside Discord's embed limits
	maxChartRows = 25
	chartWidth   = 20
)

// renderOdds renders the result of an exact odds calculation
func renderOdds(output *odds.CalculateOddsOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🎲 %s totalling %d", output.Notation, output.Target),
		Color: colorSuccess,
	}

	if output.Impossible {
		embed.Description = fmt.Sprintf("Never! %s can only total %d to %d.",
			output.Notation, output.DiceCount, output.DiceCount*output.Sides)
		embed.Color = colorNeutral
		return embed
	}

	embed.Description = fmt.Sprintf("**%s** (%s)", formatPercent(output.Probability), formatProbability(output.Probability))
	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name:   "At least",
			Value:  formatPercent(output.AtLeast),
			Inline: true,
		},
		{
			Name:   "At most",
			Value:  formatPercent(output.AtMost),
			Inline: true,
		},
		{
			Name:   "Ways",
			Value:  fmt.Sprintf("%s of %s", output.Ways.String(), output.Outcomes.String()),
			Inline: false,
		},
	}

	return embed
}

// renderDistribution renders every reachable total as a bar chart
func renderDistribution(output *odds.GetDistributionOutput) *discordgo.MessageEmbed {
	dist := output.Distribution

	modes := make([]string, 0, len(dist.Modes))
	for _, mode := range dist.Modes {
		modes = append(modes, strconv.Itoa(mode))
	}

	description := "```\n" + renderChart(dist) + "```"
	if shown := chartRows(dist); shown < len(dist.Outcomes) {
		description += fmt.Sprintf("\nShowing the %d most central of %d totals.", shown, len(dist.Outcomes))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📊 Distribution of %s", output.Notation),
		Description: description,
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Range",
				Value:  fmt.Sprintf("%d to %d", dist.Min, dist.Max),
				Inline: true,
			},
			{
				Name:   "Mean",
				Value:  strconv.FormatFloat(dist.Mean, 'f', -1, 64),
				Inline: true,
			},
			{
				Name:   "Most likely",
				Value:  strings.Join(modes, ", "),
				Inline: true,
			},
		},
	}
}

// renderSimulation renders simulated rolls next to the exact odds
func renderSimulation(output *odds.SimulateRollsOutput, target int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎲 Simulated %d rolls of %s", output.Trials, output.Notation),
		Description: fmt.Sprintf("Rolled %d **%d** times.", target, output.Hits),
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Observed",
				Value:  formatPercent(output.Observed),
				Inline: true,
			},
			{
				Name:   "Exact",
				Value:  formatPercent(output.Expected),
				Inline: true,
			},
			{
				Name:   "Difference",
				Value:  formatSigned(output.Difference),
				Inline: true,
			},
		},
	}
}

// renderHistory renders the recent queries of a channel
func renderHistory(queries []*models.OddsQuery) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Recent odds",
		Color: colorNeutral,
	}

	if len(queries) == 0 {
		embed.Description = "No odds asked here yet."
		return embed
	}

	var b strings.Builder
	for _, query := range queries {
		switch query.Kind {
		case models.QueryKindDistribution:
			fmt.Fprintf(&b, "`%s` distribution", query.Notation())
		case models.QueryKindSimulation:
			fmt.Fprintf(&b, "`%s = %d` observed %s vs %s", query.Notation(), query.Target,
				formatPercent(query.Observed), formatPercent(query.Probability))
		default:
			fmt.Fprintf(&b, "`%s = %d` %s", query.Notation(), query.Target, formatPercent(query.Probability))
		}

		if query.UserName != "" {
			fmt.Fprintf(&b, " asked by %s", query.UserName)
		}
		b.WriteString("\n")
	}
	embed.Description = b.String()

	return embed
}

// renderChart draws one row per total, centred on the most likely total when there are too many
func renderChart(dist *probability.Distribution) string {
	from, to := chartWindow(dist)

	var peak float64
	for _, outcome := range dist.Outcomes[from:to] {
		peak = math.Max(peak, outcome.Probability)
	}

	width := len(strconv.Itoa(dist.Max))

	var b strings.Builder
	for _, outcome := range dist.Outcomes[from:to] {
		bar := 0
		if peak > 0 {
			bar = int(math.Round(outcome.Probability / peak * chartWidth))
		}
		fmt.Fprintf(&b, "%*d %-*s %6.2f%%\n", width, outcome.Sum, chartWidth, strings.Repeat("#", bar), outcome.Probability*100)
	}
	return b.String()
}

// chartWindow returns the range of outcome indexes to draw
func chartWindow(dist *probability.Distribution) (int, int) {
	if len(dist.Outcomes) <= maxChartRows {
		return 0, len(dist.Outcomes)
	}

	from := dist.Modes[0] - dist.Min - maxChartRows/2
	if from < 0 {
		from = 0
	}
	if from > len(dist.Outcomes)-maxChartRows {
		from = len(dist.Outcomes) - maxChartRows
	}
	return from, from + maxChartRows
}

func chartRows(dist *probability.Distribution) int {
	from, to := chartWindow(dist)
	return to - from
}

// formatPercent formats a probability as a percentage with two decimals
func formatPercent(p float64) string {
	return strconv.FormatFloat(p*100, 'f', 2, 64) + "%"
}

// formatProbability formats a probability with four decimals
func formatProbability(p float64) string {
	return strconv.FormatFloat(p, 'f', probability.Precision, 64)
}

func formatSigned(p float64) string {
	if p > 0 {
		return "+" + formatProbability(p)
	}
	return formatProbability(p)
}
