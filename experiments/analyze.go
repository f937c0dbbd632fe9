package experiments

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rs/zerolog/log"

	"connectn/experiments/metrics"
)

type aggregateKey struct {
	Width  int
	Height int
	N      int
	Depth  int
}

type aggregate struct {
	NodesMinimax    float64
	NodesAlphaBeta  float64
	TimeMinimaxNs   float64
	TimeAlphaBetaNs float64
	Count           int
}

// Analyze aggregates a decision records CSV by (width, height, N, depth) and
// renders one nodes-vs-depth comparison chart per board configuration into
// outDir.
func Analyze(csvPath, outDir string) error {
	records, err := metrics.ReadDecisionRecords(csvPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no decision records in %s", csvPath)
	}

	aggregates := aggregateRecords(records)

	err = os.MkdirAll(outDir, 0755)
	if err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	for _, board := range boardKeys(aggregates) {
		path := filepath.Join(outDir,
			fmt.Sprintf("nodes_vs_depth_%dx%d_N%d.html", board.width, board.height, board.n))
		err = renderNodesChart(board, aggregates, path)
		if err != nil {
			return err
		}
		log.Info().Msgf("rendered chart %s", path)
	}
	return nil
}

func aggregateRecords(records []metrics.DecisionRecord) map[aggregateKey]*aggregate {
	aggregates := map[aggregateKey]*aggregate{}
	for _, r := range records {
		key := aggregateKey{Width: r.Width, Height: r.Height, N: r.N, Depth: r.Depth}
		agg, ok := aggregates[key]
		if !ok {
			agg = &aggregate{}
			aggregates[key] = agg
		}
		agg.NodesMinimax += float64(r.NodesMinimax)
		agg.NodesAlphaBeta += float64(r.NodesAlphaBeta)
		agg.TimeMinimaxNs += float64(r.TimeMinimaxNs)
		agg.TimeAlphaBetaNs += float64(r.TimeAlphaBetaNs)
		agg.Count++
	}
	for _, agg := range aggregates {
		agg.NodesMinimax /= float64(agg.Count)
		agg.NodesAlphaBeta /= float64(agg.Count)
		agg.TimeMinimaxNs /= float64(agg.Count)
		agg.TimeAlphaBetaNs /= float64(agg.Count)
	}
	return aggregates
}

// boardKeys returns the distinct board configurations, sorted for stable
// output order.
func boardKeys(aggregates map[aggregateKey]*aggregate) []boardConfig {
	seen := map[boardConfig]bool{}
	for key := range aggregates {
		seen[boardConfig{width: key.Width, height: key.Height, n: key.N}] = true
	}
	boards := make([]boardConfig, 0, len(seen))
	for board := range seen {
		boards = append(boards, board)
	}
	sort.Slice(boards, func(i, j int) bool {
		if boards[i].width != boards[j].width {
			return boards[i].width < boards[j].width
		}
		if boards[i].height != boards[j].height {
			return boards[i].height < boards[j].height
		}
		return boards[i].n < boards[j].n
	})
	return boards
}

func renderNodesChart(board boardConfig, aggregates map[aggregateKey]*aggregate, path string) error {
	var depths []int
	for key := range aggregates {
		if key.Width == board.width && key.Height == board.height && key.N == board.n {
			depths = append(depths, key.Depth)
		}
	}
	sort.Ints(depths)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%dx%d board, N=%d", board.width, board.height, board.n),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Search depth"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Nodes evaluated (avg)"}),
	)

	var axis []string
	var minimaxSeries, alphaBetaSeries []opts.LineData
	for _, depth := range depths {
		agg := aggregates[aggregateKey{Width: board.width, Height: board.height, N: board.n, Depth: depth}]
		axis = append(axis, fmt.Sprintf("%d", depth))
		minimaxSeries = append(minimaxSeries, opts.LineData{Value: agg.NodesMinimax})
		alphaBetaSeries = append(alphaBetaSeries, opts.LineData{Value: agg.NodesAlphaBeta})
	}

	line.SetXAxis(axis).
		AddSeries("Minimax", minimaxSeries).
		AddSeries("Alpha-Beta", alphaBetaSeries)

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	err = page.Render(f)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
