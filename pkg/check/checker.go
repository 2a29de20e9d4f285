package check

// Checker is implemented by all check types.
// Each check probes one aspect of the Deebo installation's environment
// and returns a Result. A Checker never propagates an error outward:
// every failure path, including timeouts, is folded into the Result.
//
// Implementations:
//   - nodecheck.Check: Node.js runtime version
//   - gitcheck.Check: git binary availability
//   - pathcheck.Check: tool executables and PATH contents
//   - mcpcheck.Check: external MCP helper tools
//   - configcheck.Check: host-application config files
//   - keycheck.Check: API credentials in .env
//   - guidecheck.Check: guide server files and registrations
type Checker interface {
	Run() Result
}
