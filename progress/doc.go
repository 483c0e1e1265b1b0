// Package progress defines the progress-reporting collaborator used by long
// running operations such as process import. The core calls a Visualizer
// around the whole operation; front-ends supply their own implementation or
// use the Tracker, which keeps the reported state and notifies a callback.
package progress
