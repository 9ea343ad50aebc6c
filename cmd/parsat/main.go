// Command parsat is a parallel portfolio SAT solver: it reads a DIMACS
// CNF instance and reports SATISFIABLE or UNSATISFIABLE, optionally
// enumerating every model (§6). It follows rhartert-yass's main.go in
// shape (flag-based config, "c "-prefixed progress lines, pprof hooks)
// generalized to a multi-worker portfolio with graceful SIGINT handling.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/nwsat/parsat/internal/dimacs"
	"github.com/nwsat/parsat/internal/driver"
	"github.com/nwsat/parsat/internal/sat"
)

var (
	flagThreads       = flag.Int("threads", runtime.NumCPU(), "number of parallel worker goroutines")
	flagSeed          = flag.Uint64("seed", 0, "PRNG seed (default: time-derived)")
	flagKeepGoing     = flag.Bool("keep-going", false, "enumerate all models instead of stopping at the first")
	flagGzip          = flag.Bool("gzip", false, "treat the input file as gzip-compressed")
	flagQuiet         = flag.Bool("quiet", false, "suppress periodic c progress lines")
	flagStatsEvery    = flag.Int64("stats-every", 10000, "print a progress line every N conflicts (0 disables)")
	flagDumpConflicts = flag.String("dump-conflicts", "", "directory to dump one Graphviz DOT file per conflict into")
	flagCPUProfile    = flag.Bool("cpuprof", false, "save pprof CPU profile to cpuprof")
	flagMemProfile    = flag.Bool("memprof", false, "save pprof memory profile to memprof")
)

func main() {
	flag.Parse()

	if *flagCPUProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	code := run()

	if *flagMemProfile {
		f, err := os.Create("memprof")
		if err == nil {
			pprof.WriteHeapProfile(f)
			f.Close()
		}
	}

	os.Exit(code)
}

func run() int {
	in, err := loadInstance()
	if err != nil {
		log.Print(err)
		return 1
	}

	fmt.Printf("c variables: %d\n", in.NumVars)
	fmt.Printf("c clauses:   %d\n", len(in.Clauses))
	fmt.Printf("c threads:   %d\n", *flagThreads)

	seed := *flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cfg := driver.Config{
		Threads:   *flagThreads,
		Seed:      driver.NewSeed(seed),
		KeepGoing: *flagKeepGoing,
	}
	if !*flagQuiet {
		cfg.StatsOut = os.Stdout
		cfg.StatsEvery = *flagStatsEvery
	}
	if *flagDumpConflicts != "" {
		if err := os.MkdirAll(*flagDumpConflicts, 0o755); err != nil {
			log.Print(err)
			return 1
		}
		cfg.GraphvizDir = *flagDumpConflicts
		cfg.GraphvizOpen = func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		}
	}

	abort := make(chan struct{})
	cfg.Abort = abort
	done := make(chan struct{})
	var res driver.Result
	var runErr error
	go func() {
		defer close(done)
		res, runErr = driver.Run(cfg, in)
	}()

	installSignalHandler(abort, done)

	<-done
	if runErr != nil {
		log.Print(runErr)
		return 1
	}

	fmt.Printf("c conflicts: %d\n", res.Conflicts)
	fmt.Printf("c restarts:  %d\n", res.Restarts)

	switch res.Status {
	case sat.ResultSAT:
		dimacs.WriteStatus(os.Stdout, true)
		for _, model := range res.Models {
			dimacs.WriteModel(os.Stdout, in, model)
		}
		return 0
	case sat.ResultUNSAT:
		dimacs.WriteStatus(os.Stdout, false)
		return 0
	default:
		fmt.Println("c interrupted before a verdict was reached")
		return 1
	}
}

func loadInstance() (*dimacs.Instance, error) {
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return dimacs.LoadStdin(os.Stdin, *flagGzip)
	}
	return dimacs.Load(flag.Arg(0), *flagGzip)
}

// installSignalHandler implements §7's interrupt policy: the first SIGINT
// closes abort, which makes every worker return ResultUnknown at its next
// loop check instead of running to a verdict; a second SIGINT aborts the
// process immediately.
func installSignalHandler(abort chan<- struct{}, done <-chan struct{}) {
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		first := true
		for range sigCh {
			if first {
				first = false
				fmt.Fprintln(os.Stderr, "c interrupt received, stopping (press again to abort)")
				close(abort)
				continue
			}
			fmt.Fprintln(os.Stderr, "c second interrupt, aborting")
			os.Exit(130)
		}
	}()
	go func() {
		<-done
		signal.Stop(sigCh)
		close(sigCh)
	}()
}
