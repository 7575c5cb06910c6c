// Command whendemo exercises the when core end to end: a success chain, a
// failure chain, and a handful of independent promise-driven workflows run
// concurrently via errgroup, joined at the end with a single Core-wide Idle
// wait.
//
// Grounded on SaatvikAwasthi-go-promise/cmd/promise/main.go's shape (success
// case, failure case, a shared wait point before exit), upgraded to use
// golang.org/x/sync/errgroup so the demo can report which workflow failed
// instead of merely waiting for all of them.
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gururajrkatti/when"
)

func main() {
	core := when.New(
		when.WithScheduler(when.NewScheduler()),
		when.WithReporter(when.ZerologReporter{Logger: zerolog.New(zerolog.NewConsoleWriter())}),
	)

	fmt.Println("--- success chain ---")
	when.NewPromise(core, func(resolve func(when.Result), _ func(when.Result), _ func(when.Result)) {
		resolve("data has arrived")
	}).Then(func(v, _ when.Result) when.Result {
		fmt.Printf("then: %v\n", v)
		return v
	}, nil, nil).Then(func(v, _ when.Result) when.Result {
		fmt.Printf("then again: %v\n", v)
		return v
	}, nil, nil).Catch(func(r, _ when.Result) when.Result {
		fmt.Printf("unexpected catch: %v\n", r)
		return nil
	})

	fmt.Println("--- failure chain ---")
	failing := when.NewPromise(core, func(_ func(when.Result), reject func(when.Result), _ func(when.Result)) {
		reject(errors.New("something went wrong"))
	})
	failing.Then(func(v, _ when.Result) when.Result {
		fmt.Printf("won't run: %v\n", v)
		return v
	}, nil, nil)
	failing.Catch(func(r, _ when.Result) when.Result {
		fmt.Printf("catch: %v\n", r)
		return nil
	})
	failing.Finally(func() {
		fmt.Println("finally: cleanup after failure")
	})

	fmt.Println("--- concurrent workflows via errgroup ---")
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 3; i++ {
		i := i
		g.Go(func() error {
			p := core.Resolve(i).Then(func(v, _ when.Result) when.Result {
				time.Sleep(10 * time.Millisecond)
				return v.(int) * v.(int)
			}, nil, nil)
			v, err := p.Await(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("workflow %d squared: %v\n", i, v)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("a workflow failed: %v\n", err)
	}

	core.Idle()
	fmt.Println("all promises have completed, exiting.")
}
