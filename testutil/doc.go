// Package testutil wires webtest components into Go's testing package.
//
//	func TestAPI(t *testing.T) {
//	    srv := server.NewComponent(server.New(server.Config{}, log))
//	    testutil.T(t).Setup(srv)
//	    // component is automatically stopped when the test ends
//	}
package testutil
