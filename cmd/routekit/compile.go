package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routekit/routekit/pkg/route"
)

var (
	compileTokens   []string
	compileWildcard string
)

var compileCmd = &cobra.Command{
	Use:   "compile TEMPLATE",
	Short: "Print the anchored pattern a template compiles to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := make(map[string]string, len(compileTokens))
		for _, tok := range compileTokens {
			name, pat, ok := strings.Cut(tok, "=")
			if !ok {
				return fmt.Errorf("invalid token %q, expected name=pattern", tok)
			}
			tokens[name] = pat
		}

		rt := route.New(route.Config{
			Template:      args[0],
			TokenPatterns: tokens,
			WildcardParam: compileWildcard,
		})
		re, err := rt.Pattern()
		if err != nil {
			return fmt.Errorf("compiling %q: %w", args[0], err)
		}

		fmt.Println(re.String())
		return nil
	},
}

func init() {
	compileCmd.Flags().StringArrayVarP(&compileTokens, "token", "t", nil, "token pattern as name=pattern (repeatable)")
	compileCmd.Flags().StringVarP(&compileWildcard, "wildcard", "w", "", "wildcard parameter name")

	rootCmd.AddCommand(compileCmd)
}
