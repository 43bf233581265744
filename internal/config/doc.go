// Package config provides configuration parsing for vango-ssr projects.
//
// The configuration is stored in ssr.json, ssr.yaml or ssr.yml at the
// project root. This package handles loading, saving, and validating it.
// Unknown keys are rejected.
//
// # Configuration File Structure
//
//	name: blog
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	  timeout: 5s
//	  streaming: true
//	  metricsPath: /metrics
//	render:
//	  pretty: false
//	  sortAttributes: true
//	  maxConcurrency: 16
//	  lang: en
//	export:
//	  target: s3://my-bucket/site
//	  region: eu-west-1
//	  routes: [/, /about]
//	log:
//	  level: info
//	  format: json
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
