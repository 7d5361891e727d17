// Package devserver serves an asset tree for local development.
//
// HTTP API
//
//	GET /healthz
//	    Liveness probe; answers "OK".
//
//	GET /localization?lang=L&key=value...
//	    Answer the text request the viewer sends to its sheet endpoint. The
//	    reply holds the translation of every requested key found in
//	    localization/<L>.json under the asset directory. Unknown languages
//	    are 404.
//
//	GET /{path}
//	    Serve the file at {path} under the asset directory: the commodity
//	    index, model lists, model assets and the localization documents.
//
// Every request is written to the access log with method, path, remote,
// status, bytes and duration.
package devserver
