package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/tripcost/internal/catalog"
	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/planner"
	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive wizard for the default trip",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, p, err := loadPlanner()
	if err != nil {
		return err
	}

	setupWizard(bufio.NewReader(os.Stdin), os.Stdout, &cfg, p)

	path := config.Path()
	if flagConfig != "" {
		path = flagConfig
	}
	if err := config.SaveFile(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", path)
	fmt.Println("  Run `tripcost setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

// setupWizard asks for each default in turn. An empty answer keeps the
// current value; invalid answers are reported and the current value kept.
func setupWizard(in *bufio.Reader, out io.Writer, cfg *config.Config, p *planner.Planner) {
	cat := p.Catalog()
	lim := p.Limits()
	g := &cfg.General

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to tripcost!")
	fmt.Fprintln(out, "  Press Enter to keep the value in [brackets].")
	fmt.Fprintln(out)

	routes := cat.Routes()
	routeLabels := make([]string, len(routes))
	routeKeys := make([]string, len(routes))
	for i, r := range routes {
		routeKeys[i] = r.Key
		routeLabels[i] = fmt.Sprintf("%s  %s", r.Name, cli.FormatRoute(r.Cities))
	}
	g.DefaultRoute = chooseKey(in, out, "1. Default route", routeKeys, routeLabels, g.DefaultRoute)

	transports := cat.Transports()
	g.DefaultTransport = chooseKey(in, out, "2. Default transport",
		keysOf(transports, func(t catalog.Transport) string { return t.Key }),
		keysOf(transports, func(t catalog.Transport) string { return t.Name }),
		g.DefaultTransport)

	hotels := cat.Hotels()
	g.DefaultHotel = chooseKey(in, out, "3. Default hotel tier",
		keysOf(hotels, func(h catalog.HotelTier) string { return h.Key }),
		keysOf(hotels, func(h catalog.HotelTier) string { return h.Label }),
		g.DefaultHotel)

	g.DefaultDays = askInt(in, out, "4. Trip length in days", g.DefaultDays, lim.MinDays, lim.MaxDays)
	g.DefaultPassengers = askInt(in, out, "5. Passengers", g.DefaultPassengers, lim.MinPassengers, lim.MaxPassengers)
	g.DefaultBudget = askFloat(in, out, "6. Budget", g.DefaultBudget, lim.MinBudget, lim.MaxBudget)

	if answer := ask(in, out, "7. Currency code", g.Currency); answer != "" {
		g.Currency = strings.ToUpper(answer)
	}

	names := theme.Names()
	cfg.Appearance.Theme = chooseKey(in, out, "8. Color theme", names, names, cfg.Appearance.Theme)
}

func ask(in *bufio.Reader, out io.Writer, prompt, current string) string {
	fmt.Fprintf(out, "  %s [%s]\n", prompt, current)
	fmt.Fprint(out, "     > ")
	line, _ := in.ReadString('\n')
	fmt.Fprintln(out)
	return strings.TrimSpace(line)
}

// chooseKey lists numbered options and accepts a number or a key.
func chooseKey(in *bufio.Reader, out io.Writer, prompt string, keys, labels []string, current string) string {
	fmt.Fprintf(out, "  %s\n", prompt)
	for i, k := range keys {
		marker := " "
		if k == current {
			marker = "*"
		}
		fmt.Fprintf(out, "   %s (%d) %s\n", marker, i+1, labels[i])
	}
	answer := ask(in, out, "Choice", current)
	if answer == "" {
		return current
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(keys) {
		return keys[n-1]
	}
	for _, k := range keys {
		if strings.EqualFold(k, answer) {
			return k
		}
	}
	fmt.Fprintf(out, "     Unknown choice %q, keeping %s\n\n", answer, current)
	return current
}

func askInt(in *bufio.Reader, out io.Writer, prompt string, current, lo, hi int) int {
	answer := ask(in, out, fmt.Sprintf("%s (%d-%d)", prompt, lo, hi), strconv.Itoa(current))
	if answer == "" {
		return current
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < lo || n > hi {
		fmt.Fprintf(out, "     Invalid value %q, keeping %d\n\n", answer, current)
		return current
	}
	return n
}

func askFloat(in *bufio.Reader, out io.Writer, prompt string, current, lo, hi float64) float64 {
	answer := ask(in, out, fmt.Sprintf("%s (%s-%s)", prompt, cli.FormatMoney(lo, ""), cli.FormatMoney(hi, "")),
		strconv.FormatFloat(current, 'f', -1, 64))
	if answer == "" {
		return current
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(answer, ",", ""), 64)
	if err != nil || math.IsNaN(v) || v < lo || v > hi {
		fmt.Fprintf(out, "     Invalid value %q, keeping %s\n\n", answer, strconv.FormatFloat(current, 'f', -1, 64))
		return current
	}
	return v
}

func keysOf[T any](items []T, key func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = key(it)
	}
	return out
}
