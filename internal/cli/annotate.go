package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ndexcontent/indraloader/internal/cache"
	"github.com/ndexcontent/indraloader/internal/util"
	"github.com/ndexcontent/indraloader/pkg/common"
	"github.com/ndexcontent/indraloader/pkg/filter"
	"github.com/ndexcontent/indraloader/pkg/indra"
	"github.com/ndexcontent/indraloader/pkg/logger"
	"github.com/ndexcontent/indraloader/pkg/ndex"
	"github.com/ndexcontent/indraloader/pkg/network"
)

var (
	indraCacheDir   string
	curationsFile   string
	saveAsFileDir   string
	netPrefix       string
	maxNetworkSize  int
	removeOrigEdges bool
	sourceValue     string
	queryTimeout    time.Duration
)

// annotateCmd represents the annotate command
var annotateCmd = &cobra.Command{
	Use:   "annotate <input>",
	Short: "Annotate one or more networks with INDRA evidence",
	Long: `Annotate enriches networks with INDRA statement evidence. The input is
either a single CX file (ending in .cx) or a text file listing NDEx network
UUIDs one per line. UUID networks are downloaded from the server configured
in the credentials profile.

Example:
  indraloader annotate network.cx --saveasfile out/
  indraloader annotate uuids.txt --indracachedir cache/ --curations curations.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	annotateCmd.Flags().StringVar(&indraCacheDir, "indracachedir", "", "directory of cached INDRA payloads; an existing payload is reused instead of querying, a fresh query result is saved there")
	annotateCmd.Flags().StringVar(&curationsFile, "curations", "", "INDRA curations JSON file; statements flagged incorrect without a good curation are removed")
	annotateCmd.Flags().StringVar(&saveAsFileDir, "saveasfile", "", "directory where annotated networks are written as CX files (created if missing)")
	annotateCmd.Flags().StringVar(&netPrefix, "netprefix", indra.DefaultNetworkPrefix, "text prepended to the name of annotated networks")
	annotateCmd.Flags().IntVar(&maxNetworkSize, "maxnetworksize", 100, "networks with more nodes than this are skipped with an error")
	annotateCmd.Flags().BoolVar(&removeOrigEdges, "remove-orig-edges", false, "remove all original edges before annotating")
	annotateCmd.Flags().StringVar(&sourceValue, "sourcevalue", "", "value written to the __edge_source attribute of existing edges lacking one")
	annotateCmd.Flags().DurationVar(&queryTimeout, "timeout", 10*time.Minute, "timeout for a single INDRA subgraph query")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	chain, err := buildFilterChain(curationsFile)
	if err != nil {
		return err
	}
	annotator := indra.NewAnnotator(indra.NewAnnotatorParams{
		Client: indra.NewClient(indra.NewClientParams{
			Endpoint:   util.GetEnvString("INDRALOADER_SUBGRAPH_ENDPOINT", ""),
			Timeout:    queryTimeout,
			MaxRetries: util.GetEnvInt("INDRALOADER_MAX_RETRIES", 0),
		}),
		Filters: chain,
	})

	var payloadCache cache.Cache
	if indraCacheDir != "" {
		disk, err := cache.NewDiskCache(indraCacheDir)
		if err != nil {
			return err
		}
		payloadCache = cache.NewLayered(
			cache.NewMemoryCache(time.Hour, 10*time.Minute), disk)
	}

	if saveAsFileDir != "" {
		if err := os.MkdirAll(saveAsFileDir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	keys, fromServer, err := inputKeys(args[0])
	if err != nil {
		return err
	}

	var ndexClient *ndex.Client
	if fromServer {
		ndexClient = ndex.NewClient(ndex.NewClientParams{
			Server:   viper.GetString(profile + ".server"),
			Username: viper.GetString(profile + ".user"),
			Password: viper.GetString(profile + ".password"),
		})
	}

	for _, key := range keys {
		var net *network.Network
		if fromServer {
			net, err = ndexClient.GetNetwork(ctx, key)
		} else {
			net, err = network.ReadFile(args[0])
		}
		if err != nil {
			return err
		}

		if err := annotateOne(ctx, annotator, payloadCache, net, key); err != nil {
			return err
		}
	}
	return nil
}

func annotateOne(ctx context.Context, annotator *indra.Annotator, payloadCache cache.Cache, net *network.Network, key string) error {
	logger.Debug("processing network", "name", net.Name(), "id", net.ID(), "key", key)

	if net.NodeCount() > maxNetworkSize {
		logger.Error("network exceeds maximum size, skipping; raise with --maxnetworksize",
			"name", net.Name(), "nodes", net.NodeCount(), "max", maxNetworkSize)
		return nil
	}

	var result *common.Result
	cached := false
	if payloadCache != nil {
		if data, ok := payloadCache.Get(key); ok {
			parsed, err := common.ParseResult(data)
			if err != nil {
				logger.Warn("ignoring unreadable cached payload", "key", key, "error", err)
			} else {
				logger.Info("using cached INDRA payload", "key", key)
				result = parsed
				cached = true
			}
		}
	}

	outcome, err := annotator.AnnotateNetwork(ctx, indra.AnnotateParams{
		Network:         net,
		Result:          result,
		NetPrefix:       netPrefix,
		RemoveOrigEdges: removeOrigEdges,
		SourceValue:     sourceValue,
	})
	if err != nil {
		return fmt.Errorf("annotating %s: %w", key, err)
	}
	if outcome.FilterReport != "" {
		fmt.Print(outcome.FilterReport)
	}

	if !cached && payloadCache != nil {
		if err := payloadCache.Set(key, outcome.Result.Raw, 0); err != nil {
			logger.Warn("saving INDRA payload failed", "key", key, "error", err)
		}
	}

	if saveAsFileDir != "" {
		outfile := filepath.Join(saveAsFileDir, key+".cx")
		logger.Debug("saving network", "file", outfile)
		if err := net.WriteFile(outfile); err != nil {
			return err
		}
	}
	return nil
}

// inputKeys interprets the input argument. A path ending in .cx is a single
// local network keyed by its file name; anything else is a text file of NDEx
// network UUIDs, one per line. Lines shorter than a UUID are skipped.
func inputKeys(input string) (keys []string, fromServer bool, err error) {
	if strings.HasSuffix(strings.ToLower(input), ".cx") {
		return []string{filepath.Base(input)}, false, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, false, fmt.Errorf("reading input file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		clean := strings.TrimSpace(line)
		if len(clean) < 36 {
			continue
		}
		keys = append(keys, clean)
	}
	if len(keys) == 0 {
		return nil, false, fmt.Errorf("no network UUIDs found in %s", input)
	}
	return keys, true, nil
}

func buildFilterChain(curationsPath string) (filter.Chain, error) {
	chain := filter.Chain{filter.NewSelfLoopStatementFilter()}
	if curationsPath != "" {
		curations, err := loadCurations(curationsPath)
		if err != nil {
			return nil, err
		}
		incorrect, err := filter.NewIncorrectStatementFilter(curations)
		if err != nil {
			return nil, fmt.Errorf("building curation filter: %w", err)
		}
		chain = append(chain, incorrect)
	}
	chain = append(chain,
		filter.NewSingleReadingStatementFilter(),
		filter.NewSparserComplexStatementFilter(),
		filter.NewMedscanStatementFilter())
	return chain, nil
}

func loadCurations(path string) ([]common.Curation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading curations file: %w", err)
	}
	var curations []common.Curation
	if err := json.Unmarshal(data, &curations); err != nil {
		return nil, fmt.Errorf("parsing curations file: %w", err)
	}
	return curations, nil
}
