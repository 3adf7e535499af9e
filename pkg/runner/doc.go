/*
Package runner implements the caller-side execution loop for the transducer engine.

The engine performs one transition attempt per Step call and never loops on its
own. Runner repeats Step until the terminal state is reached or the engine parks
on a rejected symbol, honouring context cancellation between steps and a step
budget for programs that never terminate.

# Usage

	eng := twoway.New()
	eng.Initialize(ctx, "AB")

	res, err := runner.NewRunner(
		runner.WithObserver(func(_ domain.Outcome, trace string) { fmt.Println(trace) }),
	).Run(ctx, eng)
	if errors.Is(err, runner.ErrRejected) {
		// surface the parked engine to the user
	}
	fmt.Println(res.Output)
*/
package runner
