// Package plg reads and writes process models in the PLG document format.
//
// A process is a control-flow graph of events, tasks and gateways joined by
// sequences, with data objects attached to nodes and edges. The Service
// facade exposed by this package imports and exports documents through afs
// URLs and persists processes in a repository:
//
//	srv := plg.New()
//	result, _ := srv.Import(ctx, "file:///tmp/order.plg")
//	for _, warning := range result.Warnings {
//		fmt.Println(warning)
//	}
//	_ = srv.Export(ctx, result.Process, "file:///tmp/order-copy.plg")
//
// The graph model lives in the model package, the document codec in
// service/codec.
package plg
