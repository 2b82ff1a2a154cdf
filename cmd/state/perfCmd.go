package state

import (
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/VictoriaMetrics/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SujalChoudhari/Node-User-Settings/cmd/util"
)

var (
	perfCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for the preference store",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfKeyPrefix  = "__perf"
	perfNumThreads = 10
	perfKeySpread  = 100
	perfDump       = false
)

func init() {
	// add flags
	key := "threads"
	perfCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the benchmark"))
	key = "keys"
	perfCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the tests"))
	key = "dump-metrics"
	perfCmd.Flags().Bool(key, false, util.WrapString("Dump store counters in Prometheus text format after the run"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfNumThreads = viper.GetInt("threads")
	perfKeySpread = viper.GetInt("keys")
	perfDump = viper.GetBool("dump-metrics")

	return nil
}

// perfKey returns the i-th benchmark key, cycling through the key spread
func perfKey(op string, i int) string {
	return perfKeyPrefix + "-" + op + "-" + strconv.Itoa(i%perfKeySpread)
}

// cleanupKeys deletes all keys a benchmark wrote
func cleanupKeys(op string) {
	for i := 0; i < perfKeySpread; i++ {
		_, _ = prefs.Delete(perfKey(op, i), util.GetFileName())
	}
}

func runPerf(_ *cobra.Command, _ []string) error {
	fmt.Println("Performance testing tool for the preference store")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	cfg := util.GetStoreConfig()
	fmt.Println(cfg.String())
	fmt.Printf("Threads: %d\n", perfNumThreads)
	fmt.Printf("Keys:    %d\n", perfKeySpread)
	fmt.Println()

	fmt.Println("starting tests...")

	setResult := testing.Benchmark(func(b *testing.B) {
		b.Cleanup(func() { cleanupKeys("set") })
		b.SetParallelism(perfNumThreads)
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				_, _ = prefs.Set(perfKey("set", counter), "test", util.GetFileName())
				counter++
			}
		})
	})
	printResult("set", setResult)

	getResult := testing.Benchmark(func(b *testing.B) {
		// set keys
		for i := 0; i < perfKeySpread; i++ {
			_, _ = prefs.Set(perfKey("get", i), "test", util.GetFileName())
		}
		b.Cleanup(func() { cleanupKeys("get") })
		b.SetParallelism(perfNumThreads)
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				_, _ = prefs.Get(perfKey("get", counter), "", util.GetFileName())
				counter++
			}
		})
	})
	printResult("get", getResult)

	hasResult := testing.Benchmark(func(b *testing.B) {
		b.SetParallelism(perfNumThreads)
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				_, _ = prefs.Has(perfKey("has", counter), util.GetFileName())
				counter++
			}
		})
	})
	printResult("has", hasResult)

	if perfDump {
		fmt.Println()
		fmt.Println("store counters:")
		metrics.WritePrometheus(os.Stdout, false)
	}

	return nil
}

// printResult prints one benchmark result in a fixed-width row
func printResult(name string, result testing.BenchmarkResult) {
	opsPerSec := 0.0
	if result.T > 0 {
		opsPerSec = float64(result.N) / result.T.Seconds()
	}
	fmt.Printf("  %-8s: %10d ops in %12v (%10.1f ops/sec)\n", name, result.N, result.T, opsPerSec)
}
