// Package export renders pages to static files.
//
// An Exporter requests each route from an http.Handler (normally a
// *server.Server) in process and writes the responses to a Store. Two
// stores are provided: DiskStore writes below a directory and S3Store
// uploads to an S3 bucket.
//
//	store, err := export.NewDiskStore("dist")
//	exp := &export.Exporter{Handler: srv, Store: store}
//	err = exp.Export(ctx, srv.Routes())
//
// Targets are parsed from strings with ParseTarget: "s3://bucket/prefix"
// selects S3, anything else is a directory.
//
// # Keys
//
// Routes map to keys the way static hosts resolve them: "/" becomes
// "index.html", "/about" becomes "about/index.html" and a route that
// already has an extension, like "/feed.xml", is kept as is.
package export
