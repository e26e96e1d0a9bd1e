package options

// PlaygroundOptions collects the flag values for the playground binary.
type PlaygroundOptions struct {
	TestName    *string
	FixtureDir  *string
	Fixture     *string
	ShaderDir   *string
	LibraryName *string
	FrameLimit  *int
	Verbose     *bool
}
