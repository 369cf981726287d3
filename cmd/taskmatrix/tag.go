// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/taskmatrix/internal/tag"
)

var tagCmd = &cobra.Command{
	Use:   "tag [text]",
	Short: "Parse an attribute tag out of free text",
	Long: `Tag scans the given text for an inline attribute tag of the form
#U<u>I<i>E<e>D<d>h and prints the four attributes it encodes. Useful for
checking how an event title or card description will be scored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		t, ok := tag.Parse(text)
		if !ok {
			return fmt.Errorf("no attribute tag found in %q", text)
		}
		fmt.Printf("urgency:    %d\n", t.Urgency)
		fmt.Printf("importance: %d\n", t.Importance)
		fmt.Printf("enjoyment:  %d\n", t.Enjoyment)
		fmt.Printf("duration:   %dh\n", t.DurationHours)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
