package settings

type AppSettings struct {
	Name  string `json:"name" doc:"Workspace display name"`
	Theme string `json:"theme" doc:"UI theme preference"`
}

type getOutput struct {
	Body AppSettings
}

type updateInput struct {
	Body AppSettings
}

type updateOutput struct {
	Body AppSettings
}
