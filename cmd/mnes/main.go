// Command mnes is the interactive shell around the name encoder: encode
// names, inspect usage statistics, and export the session history.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"k8s.io/klog/v2"

	"github.com/myatkaung/go-myanmarnames/dict"
	"github.com/myatkaung/go-myanmarnames/encoder"
	"github.com/myatkaung/go-myanmarnames/history"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func main() {
	klog.InitFlags(nil)
	historyPath := flag.String("history", "encoding_history.json", "path for exported history JSON")
	flag.Parse()

	enc := encoder.New(dict.Builtin())
	in := bufio.NewReader(os.Stdin)

	fmt.Println(titleStyle.Render("Myanmar Name Encoding System"))
	for {
		fmt.Println()
		fmt.Println("1. Encode a name")
		fmt.Println("2. View statistics")
		fmt.Println("3. Export history")
		fmt.Println("4. Exit")
		choice, ok := prompt(in, "Enter your choice (1-4): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			runEncode(in, enc)
		case "2":
			runStats(enc)
		case "3":
			runExport(enc, *historyPath)
		case "4":
			return
		default:
			fmt.Println(errStyle.Render("Invalid choice. Please try again."))
		}
	}
}

// prompt reads one trimmed line; ok is false on EOF.
func prompt(in *bufio.Reader, label string) (answer string, ok bool) {
	fmt.Print(labelStyle.Render(label))
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func runEncode(in *bufio.Reader, enc *encoder.Encoder) {
	name, ok := prompt(in, "Enter Myanmar name to encode: ")
	if !ok {
		return
	}
	rawFormat, _ := prompt(in, "Output format [short/long/academic/initial] (default=short): ")
	format := encoder.Format(strings.ToLower(rawFormat))
	if !format.Known() {
		format = encoder.FormatShort
	}

	out, err := enc.Encode(name, format)
	if err != nil {
		fmt.Println(errStyle.Render("Error: " + err.Error()))
		return
	}

	fmt.Println()
	fmt.Printf("%s %s\n", labelStyle.Render("Original:"), name)
	fmt.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("Encoded (%s):", format)), successStyle.Render(out.Encoded))
	for _, w := range out.Warnings {
		fmt.Println(warnStyle.Render("  warning: " + w))
	}
	fmt.Printf("  Syllables: %d   Mapped: %d   Compression: %.1f%%\n",
		out.SyllableCount, out.MappedCount, out.CompressionRatio*100)
}

func runStats(enc *encoder.Encoder) {
	report := enc.Stats().Report()
	fmt.Println()
	fmt.Printf("%s %d\n", labelStyle.Render("Total encodings:"), report.TotalEncodings)
	if report.TotalEncodings == 0 {
		return
	}
	fmt.Printf("%s %.1f%%\n", labelStyle.Render("Error rate:"), report.ErrorRate*100)
	if report.MostUsed != nil {
		fmt.Printf("%s %s (%d uses)\n", labelStyle.Render("Most used syllable:"), report.MostUsed.Syllable, report.MostUsed.Hits)
	}
	fmt.Println(labelStyle.Render("Top syllables:"))
	for i, s := range report.TopSyllables {
		fmt.Printf("  %d. %s (%d uses)\n", i+1, s, enc.Stats().Hits(s))
	}
}

func runExport(enc *encoder.Encoder, path string) {
	if err := enc.History().SaveFile(path); err != nil {
		fmt.Println(errStyle.Render("Error saving history: " + err.Error()))
		return
	}
	fmt.Println(successStyle.Render("History saved to " + path))

	recent := enc.History().Tail(3)
	if len(recent) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(labelStyle.Render("Recent encodings:"))
	fmt.Println(recentTable(recent))
}

func recentTable(entries []history.Entry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TIME", "ORIGINAL", "ENCODED", "FORMAT")
	for _, e := range entries {
		t.Row(e.Timestamp.Format("15:04:05"), e.Original, e.Encoded, e.Format)
	}
	return t.String()
}
