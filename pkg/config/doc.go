/*
Package config loads and validates splicerc configuration.

	            +-------------+
	            |   Config    |
	            |   (Jobs)    |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Replaces hardcoded paths and markers with an explicit Job per splice
- Picks a parser from the file extension
- Rejects unknown fields, missing markers and conflicting payload sources

🔄 Flow:
1. Reads the config file
2. Parses format-specific syntax
3. Validates jobs and fills defaults (name, mode)
4. Hands the Config to the operation package

📝 Paths:
Job.File and Job.ReplacementFile are relative to the config file's directory.
Job.File may be a doublestar glob, every match is spliced on its own.

HCL configs can read the environment through the env object and the config
location through config_dir.

🔍 Example:

	cfg, err := config.Load(ctx, ".splicerc.yaml")
	if err != nil {
		return err
	}
	for _, job := range cfg.Jobs {
		fmt.Println(job)
	}
*/
package config
