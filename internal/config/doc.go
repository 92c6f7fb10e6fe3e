// Package config reads fsroutes project files.
//
// The configuration is stored in fsroutes.json (or fsroutes.yaml) at the
// project root. Every field is optional.
//
// # Configuration File Structure
//
//	{
//	  "root": "./api",
//	  "httpMethods": ["get", "post", "put", "patch", "delete"],
//	  "fileInclusionPattern": "**/endpoints/**/*.{go,so}",
//	  "fileExclusionPatterns": ["**/*_test.go"],
//	  "skipLoadErrors": false,
//	  "metrics": {
//	    "namespace": "fsroutes"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	routes, err := router.BuildRoutes(ctx, cfg.RootPath(), cfg.RouterConfig())
package config
