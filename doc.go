/*
Package hyper provides type contracts and tooling for a Helm and Argo CD based
workload platform.

Usage:

	hyper [command]

Available Commands:

	generate    Generate types from chart values schemas
	validate    Validate a workload values file
	classify    Classify ApplicationSet config files
	patch       Apply a catalog patch file
	catalog     Inspect a deployment catalog repository
	charts      List the platform base charts

Examples:

	# Generate TypeScript types for every chart under ./charts
	hyper generate --charts-dir charts --output-dir types/src

	# Generate Go types instead
	hyper generate --language go --package values --output-dir gen/values

	# Validate a values file against its variant and the chart schema
	hyper validate values.yaml --chart charts/basic-container-load

	# Summarize the ApplicationSets of a catalog checkout
	hyper catalog scan ../deployment-catalog -o yaml

Configuration is read from hyper.yaml (or .yml, .toml, .json) in the working
directory. Flags override the file.
*/
package hyper
