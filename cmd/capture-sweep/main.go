package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"zona/internal/session"
	"zona/internal/store"
)

type job struct {
	layout string
	seed   int64
}

type roundResult struct {
	job
	summary session.Summary
	state   session.State
	lives   int
}

func main() {
	layouts := flag.String("layouts", strings.Join(session.LayoutNames(), ","), "comma separated layouts to sweep")
	seeds := flag.Int("seeds", 16, "seeds per layout")
	ticks := flag.Int("ticks", 6000, "tick budget per round")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	dbPath := flag.String("db", "", "SQLite file to record results in")
	flag.Parse()
	*workers = clampWorkers(*workers)

	var jobsList []job
	for _, name := range strings.Split(*layouts, ",") {
		name = strings.TrimSpace(name)
		if _, ok := session.Layouts()[name]; !ok {
			log.Fatalf("unknown layout %q (available: %s)", name, strings.Join(session.LayoutNames(), ", "))
		}
		for seed := 1; seed <= *seeds; seed++ {
			jobsList = append(jobsList, job{layout: name, seed: int64(seed)})
		}
	}

	var db store.DB
	if *dbPath != "" {
		sqlite, err := store.NewSQLiteDB(*dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer sqlite.Close()
		if err := sqlite.Migrate(); err != nil {
			sqlite.Close()
			log.Fatal(err)
		}
		db = sqlite
	}

	fmt.Printf("Sweeping %d rounds (%d workers, %d ticks)\n", len(jobsList), *workers, *ticks)

	jobs := make(chan job)
	results := make(chan roundResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runRound(j, *ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobsList {
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	var all []roundResult
	wins := map[string]int{}
	for res := range results {
		all = append(all, res)
		if res.summary.Won {
			wins[res.layout]++
		}
		if db != nil {
			if err := db.SaveResult(store.NewResult(res.summary)); err != nil {
				log.Printf("save %s seed %d: %v", res.layout, res.seed, err)
			}
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].summary.Score != all[j].summary.Score {
			return all[i].summary.Score > all[j].summary.Score
		}
		return all[i].summary.Ticks < all[j].summary.Ticks
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 rounds (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) %-8s seed=%-3d score=%-6d claimed=%5.1f%% captures=%-3d ticks=%-5d lives=%d %s\n",
			i+1, res.layout, res.seed, res.summary.Score, res.summary.ClaimedPercentage, res.summary.Captures, res.summary.Ticks, res.lives, res.state)
	}

	fmt.Println("\nWins per layout:")
	for _, name := range session.LayoutNames() {
		if total := countLayout(all, name); total > 0 {
			fmt.Printf("  %-8s %d/%d\n", name, wins[name], total)
		}
	}
}

// runRound plays one autopilot round until it ends or the tick budget runs out.
func runRound(j job, ticks int) roundResult {
	s := session.Layouts()[j.layout](map[string]string{"seed": fmt.Sprint(j.seed)})
	pilot := session.NewAutopilot(j.seed)
	for i := 0; i < ticks && s.State() == session.StatePlaying; i++ {
		pilot.Drive(s)
		s.Step()
	}
	return roundResult{job: j, summary: s.Summary(), state: s.State(), lives: s.Lives()}
}

// clampWorkers keeps at least one worker so every job gets consumed.
func clampWorkers(n int) int {
	return max(n, 1)
}

func countLayout(all []roundResult, name string) int {
	n := 0
	for _, r := range all {
		if r.layout == name {
			n++
		}
	}
	return n
}
