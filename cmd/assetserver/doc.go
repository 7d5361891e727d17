// Package main runs the development asset server. It serves a directory
// laid out the way the viewer expects its CDN to be:
//
//	assetLinks.json                  commodity index
//	<commodity>/models.json          model list (any path the index names)
//	<commodity>/*.glb, *.gltf        model assets
//	GoogleSheetsLocalization.json    sheet identity; codeGsUrl may be "localization"
//	applicationTextOptions.json      local text options
//	localization/<lang>.json         translations answered by GET /localization
//
// Configuration
//
//   - ARVIEWER_ASSET_DIR   directory to serve (default ".")
//   - ARVIEWER_ADDR        listen address (default ":8080")
//
// All state is read from disk per request; edits show up without a restart.
// Point the CLI at it with --base http://127.0.0.1:8080/.
package main
