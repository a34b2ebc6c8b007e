// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package endpoints keeps a named set of service endpoints and reads them from
// YAML definition files.
//
// # File Format
//
//	endpoints:
//	  api:
//	    url: https://api.example.com/v1
//	    port: 443
//	  legacy:
//	    url: legacy.example.com/soap
//	    secure: false
//	    port: "8080"
//
// url is required and must be a string. port may be a number or a numeric
// string; anything else leaves the endpoint without a port. secure is the
// fallback used when url carries no scheme.
//
// # Usage
//
//	reg, err := endpoints.Load("endpoints.yaml", endpoints.LoadOptions{Strict: true})
//	if err != nil {
//		return err
//	}
//	ep, err := reg.Get("api")
//	if err != nil {
//		return err
//	}
//	fmt.Println(ep.URL.FullURL())
//
// NOTE: The registry is in-memory only. Use Save or Encode to write it back.
package endpoints
