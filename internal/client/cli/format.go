package cli

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/sensitivewords/internal/client/client"
)

func itoa(n int) string { return strconv.Itoa(n) }

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func table(header string, rows func(w *tabwriter.Writer)) string {
	buf := new(bytes.Buffer)
	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	_ = w.Flush()
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

func formatWords(words []client.Word) string {
	return table("ID\tWORD\tACTIVE\tUPDATED", func(w *tabwriter.Writer) {
		for _, word := range words {
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", word.ID, word.Word, word.IsActive, formatTime(word.UpdatedAt))
		}
	})
}

func formatWord(word *client.Word) string {
	return fmt.Sprintf("ID:       %s\nWord:     %s\nActive:   %t\nCreated:  %s\nUpdated:  %s",
		word.ID, word.Word, word.IsActive, formatTime(word.CreatedAt), formatTime(word.UpdatedAt))
}

func formatStats(stats []client.Stat) string {
	return table("OPERATION\tRESOURCE\tCOUNT\tLAST UPDATED", func(w *tabwriter.Writer) {
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.OperationType, s.ResourceType, s.Count, formatTime(s.LastUpdated))
		}
	})
}

func formatHealth(rep *client.HealthReport) string {
	names := make([]string, 0, len(rep.Entries))
	for name := range rep.Entries {
		names = append(names, name)
	}
	sort.Strings(names)

	return fmt.Sprintf("Status: %s (%s)\n", rep.Status, rep.TotalDuration) +
		table("CHECK\tSTATUS\tDURATION\tDESCRIPTION", func(w *tabwriter.Writer) {
			for _, name := range names {
				e := rep.Entries[name]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, e.Status, e.Duration, e.Description)
			}
		})
}

func formatMetrics(m *client.Metrics) string {
	return fmt.Sprintf("Timestamp:  %s\nUptime:     %s\nMemory MB:  %d\nCPU s:      %.2f\nThreads:    %d",
		formatTime(m.Timestamp), m.Uptime, m.MemoryUsageMB, m.CPUTimeSeconds, m.ThreadCount)
}
