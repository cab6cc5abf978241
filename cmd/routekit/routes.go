package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var routesFile string

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the declared routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		routes, err := loadRoutes(routesFile)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTEMPLATE\tMETHODS\tACCEPTS")
		for _, rt := range routes {
			methods := strings.Join(rt.Methods(), ",")
			if methods == "" {
				methods = "*"
			}
			accepts := strings.Join(rt.AcceptTypes(), ",")
			if accepts == "" {
				accepts = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rt.Name(), rt.Template(), methods, accepts)
		}
		return w.Flush()
	},
}

func init() {
	routesCmd.Flags().StringVarP(&routesFile, "routes", "r", "routes.yaml", "route declaration file or glob")

	rootCmd.AddCommand(routesCmd)
}
