package api

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(services Services) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(services.Projects, services.Skills, services.Store, services.Appwrite),
		skillHandler:   newSkillHandler(services.Skills, services.Store, services.Appwrite),
		uploadHandler:  newUploadHandler(services.Store, services.Appwrite),
		contactHandler: newContactHandler(services.Store, services.Appwrite, services.Notifier),
	}
}
