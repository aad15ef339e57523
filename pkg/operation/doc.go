/*
Package operation applies configured splice jobs to files on disk.

	+-------------+
	|   Runner    |
	| (Jobs x     |
	|  Files)     |
	+------+------+
	       |
	+------+------+
	|   Splice    |
	| (in memory) |
	+------+------+
	       |
	+------+------+
	|   Status    |
	| (atomic     |
	|  write)     |
	+-------------+

🎯 Purpose:
- Expands jobs into targets (a job file may be a doublestar glob)
- Reads each target whole, splices it in memory, writes it back atomically
- Never writes a target whose splice failed

🔄 Flow:
1. Resolve jobs into targets
2. Load every replacement block once
3. Group targets by file; files run in parallel when Async is set
4. Within a file, jobs run in config order on the previous job's output
5. Results are reported in config order

⚡ Failures:
A failure affects only its own target. Run keeps going and returns every
failure joined into one error; errors.Is still finds region.ErrMarkerNotFound
and region.ErrInvertedRegion through it.

🔍 Example:

	runner, err := operation.NewRunner(operation.Options{Config: cfg, DryRun: true})
	if err != nil {
		return err
	}
	results, err := runner.Run(ctx)
	for _, res := range results {
		fmt.Print(res.Diff())
	}
*/
package operation
