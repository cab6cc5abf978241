package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routekit/routekit/pkg/route"
	"github.com/routekit/routekit/pkg/router"
)

var (
	checkRoutesFile string
	checkMethod     string
	checkAccept     string
	checkHTTPS      bool
	checkPort       int
	checkHeaders    []string
	checkNearMisses int
)

var checkCmd = &cobra.Command{
	Use:   "check PATH",
	Short: "Match a request against the declared routes",
	Long: `Match a request against the declared routes and report the outcome.

The request is described by flags; the positional argument is the path to
match. On a match, the winning route and its extracted parameters are
printed. Otherwise the closest-failing routes are listed with the check
that rejected them.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkRoutesFile, "routes", "r", "routes.yaml", "route declaration file or glob")
	checkCmd.Flags().StringVarP(&checkMethod, "method", "X", "GET", "request method")
	checkCmd.Flags().StringVar(&checkAccept, "accept", "", "Accept header value")
	checkCmd.Flags().BoolVar(&checkHTTPS, "https", false, "request arrived over TLS")
	checkCmd.Flags().IntVar(&checkPort, "port", 80, "server port")
	checkCmd.Flags().StringArrayVarP(&checkHeaders, "field", "f", nil, "metadata field as name=value (repeatable)")
	checkCmd.Flags().IntVar(&checkNearMisses, "near", 3, "near misses to show when nothing matches")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	routes, err := loadRoutes(checkRoutesFile)
	if err != nil {
		return err
	}

	req := &route.Request{
		Method:     checkMethod,
		HTTPS:      checkHTTPS,
		ServerPort: checkPort,
		Accept:     checkAccept,
		Fields:     make(map[string]string, len(checkHeaders)),
	}
	for _, f := range checkHeaders {
		name, value, ok := strings.Cut(f, "=")
		if !ok {
			return fmt.Errorf("invalid field %q, expected name=value", f)
		}
		req.Fields[name] = value
	}

	r := router.New()
	r.SetLogger(newLogger())
	r.Add(routes...)

	m := r.Match(path, req)
	if m == nil {
		fmt.Printf("no route matched %s %s\n", checkMethod, path)
		for _, miss := range r.NearMisses(path, req, checkNearMisses) {
			fmt.Printf("  near miss: %s (%s), score %d: %s\n",
				miss.RouteName, miss.Template, miss.Score, miss.Reason)
		}
		return fmt.Errorf("no match")
	}

	fmt.Printf("matched %s (%s), score %d\n", m.Route.Name(), m.Route.Template(), m.Attempt.Score)
	for name, value := range m.Attempt.Params {
		fmt.Printf("  %s = %s\n", name, value)
	}
	if m.Attempt.Wildcard != nil {
		fmt.Printf("  %s = %v\n", m.Route.WildcardParam(), m.Attempt.Wildcard)
	}
	return nil
}
