package domain

// technologyIcons maps a technology name to the icon asset the site serves.
// Technologies without an entry render the default icon client-side.
var technologyIcons = map[string]string{
	"React":           "/images/skills/react.png",
	"Next.js":         "/images/skills/nextjs.png",
	"Vue.js":          "/images/skills/vuejs.png",
	"Angular":         "/images/skills/angular.png",
	"Svelte":          "/images/skills/svelte.png",
	"Node.js":         "/images/skills/nodejs.png",
	"Express.js":      "/images/skills/expressjs.png",
	"Django":          "/images/skills/django.png",
	"Flask":           "/images/skills/flask.png",
	"FastAPI":         "/images/skills/fastapi.png",
	"Supabase":        "/images/skills/supabase.png",
	"Firebase":        "/images/skills/firebase.png",
	"MongoDB":         "/images/skills/mongodb.png",
	"PostgreSQL":      "/images/skills/postgresql.png",
	"MySQL":           "/images/skills/mysql.png",
	"GraphQL":         "/images/skills/graphql.png",
	"TypeScript":      "/images/skills/typescript.png",
	"JavaScript":      "/images/skills/javascript.png",
	"Kotlin":          "/images/skills/kotlin.png",
	"Android":         "/images/skills/android.png",
	"Jetpack Compose": "/images/skills/jetpackcompose.png",
	"TailwindCSS":     "/images/skills/tailwindcss.png",
	"Bootstrap":       "/images/skills/bootstrap.png",
	"Material-UI":     "/images/skills/materialui.png",
	"Chakra UI":       "/images/skills/chakraui.png",
	"Redux":           "/images/skills/redux.png",
	"React Query":     "/images/skills/reactquery.png",
	"AWS":             "/images/skills/aws.png",
	"Azure":           "/images/skills/azure.png",
	"Google Cloud":    "/images/skills/googlecloud.png",
	"Docker":          "/images/skills/docker.png",
	"Kubernetes":      "/images/skills/kubernetes.png",
	"Python":          "/images/skills/python.png",
	"Java":            "/images/skills/java.png",
	"C#":              "/images/skills/csharp.png",
	"Ruby":            "/images/skills/ruby.png",
	"PHP":             "/images/skills/php.png",
	"React Native":    "/images/skills/reactnative.png",
	"Flutter":         "/images/skills/flutter.png",
	"Ionic":           "/images/skills/ionic.png",
}

// IconsFor returns the icon mapping for the technologies that have one.
func IconsFor(technologies []string) map[string]string {
	icons := make(map[string]string, len(technologies))
	for _, tech := range technologies {
		if icon, ok := technologyIcons[tech]; ok {
			icons[tech] = icon
		}
	}
	return icons
}
