package docgen

// Example is one illustrative invocation of a command.
type Example struct {
	Command     string
	Description string
}

func affectedTargetExamples(command, target, noun string) []Example {
	return []Example{
		{command + " --parallel --maxParallel=5", "Run " + noun + " in parallel"},
		{command + " --only-failed", "Rerun the " + target + " target only for the projects that failed last time"},
		{command + " --all", "Run the " + target + " target for all projects"},
		{command + " --files=libs/mylib/src/index.ts", "Run " + noun + " for all the projects affected by changing the index.ts file"},
		{command + " --base=master --head=HEAD", "Run " + noun + " for all the projects affected by the changes between master and HEAD (e.g., PR)"},
		{command + " --base=master~1 --head=master", "Run " + noun + " for all the projects affected by the last commit on master"},
	}
}

func affectedPrintExamples(command, kind string) []Example {
	return []Example{
		{command + " --files=libs/mylib/src/index.ts", "Print the names of all the " + kind + " affected by changing the index.ts file"},
		{command + " --base=master --head=HEAD", "Print the names of all the " + kind + " affected by the changes between master and HEAD (e.g., PR)"},
		{command + " --base=master~1 --head=master", "Print the names of all the " + kind + " affected by the last commit on master"},
	}
}

// Examples maps a command's usage form to its illustrative invocations.
// Commands without an entry, or with an empty one, get no examples section.
var Examples = map[string][]Example{
	"affected": {
		{"affected --target=custom-target", "Run custom target for all affected projects"},
		{"affected --target=test --parallel --maxParallel=5", "Run tests in parallel"},
		{"affected --target=test --only-failed", "Rerun the test target only for the projects that failed last time"},
		{"affected --target=test --all", "Run the test target for all projects"},
		{"affected --target=test --files=libs/mylib/src/index.ts", "Run tests for all the projects affected by changing the index.ts file"},
		{"affected --target=test --base=master --head=HEAD", "Run tests for all the projects affected by the changes between master and HEAD (e.g., PR)"},
		{"affected --target=test --base=master~1 --head=master", "Run tests for all the projects affected by the last commit on master"},
	},
	"affected:test":  affectedTargetExamples("affected:test", "test", "tests"),
	"affected:build": affectedTargetExamples("affected:build", "build", "build"),
	"affected:e2e":   affectedTargetExamples("affected:e2e", "test", "tests"),
	"affected:lint":  affectedTargetExamples("affected:lint", "lint", "lint"),
	"affected:apps":  affectedPrintExamples("affected:apps", "apps"),
	"affected:libs":  affectedPrintExamples("affected:libs", "libs"),
	"format:write":   {},
	"format:check":   {},
	"dep-graph": {
		{"dep-graph", "Open the dep graph of the workspace in the browser"},
		{"dep-graph --file=output.json", "Save the dep graph into a json file"},
		{"dep-graph --file=output.html", "Save the dep graph into a html file"},
	},
	"affected:dep-graph": {
		{"affected:dep-graph --files=libs/mylib/src/index.ts", "Open the dep graph of the workspace in the browser, and highlight the projects affected by changing the index.ts file"},
		{"affected:dep-graph --base=master --head=HEAD", "Open the dep graph of the workspace in the browser, and highlight the projects affected by the changes between master and HEAD (e.g., PR)"},
		{"affected:dep-graph --base=master --head=HEAD --file=output.json", "Save the dep graph of the workspace in a json file, and highlight the projects affected by the changes between master and HEAD (e.g., PR)"},
		{"affected:dep-graph --base=master --head=HEAD --file=output.html", "Save the dep graph of the workspace in a html file, and highlight the projects affected by the changes between master and HEAD (e.g., PR)"},
		{"affected:dep-graph --base=master~1 --head=master", "Open the dep graph of the workspace in the browser, and highlight the projects affected by the last commit on master"},
	},
	"workspace-schematic": {},
}
