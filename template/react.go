package template

import (
	"fmt"
	"strings"

	"github.com/Rana718/nitrix/internal/codegen"
	"github.com/Rana718/nitrix/internal/gencommon"
	"github.com/Rana718/nitrix/internal/theme"
	"github.com/Rana718/nitrix/internal/types"
)

const componentsDir = "src/components"

// component ties a table to the one identifier used for its file name, its
// import in App.tsx and its JSX element.
type component struct {
	name  string
	table types.Table
}

func componentsFor(tables []types.Table) []component {
	names := make([]string, len(tables))
	for i, table := range tables {
		names[i] = table.Name
	}
	ids := gencommon.UniqueNames(names)

	components := make([]component, len(tables))
	for i, table := range tables {
		components[i] = component{name: ids[i], table: table}
	}
	return components
}

// ComponentPath is where a sanitized component lives inside a React project.
func ComponentPath(name string) string {
	return componentsDir + "/" + name + ".tsx"
}

func (pt *ProjectTemplate) reactFiles(tables []types.Table) map[string]string {
	components := componentsFor(tables)

	files := map[string]string{
		"index.html":         pt.GetViteIndex(),
		"package.json":       pt.GetReactPackageJSON(),
		"vite.config.ts":     pt.GetViteConfig(),
		"postcss.config.js":  pt.GetPostCSSConfig(),
		"tailwind.config.js": pt.GetTailwindConfig(),
		"src/index.css":      pt.GetStylesheet(),
		"src/main.tsx":       pt.GetReactMain(),
		"src/App.tsx":        pt.getReactApp(components),
	}
	for _, c := range components {
		files[ComponentPath(c.name)] = codegen.GenerateComponentModule(c.table, c.name, pt.Theme)
	}
	return files
}

func (pt *ProjectTemplate) getReactApp(components []component) string {
	var b strings.Builder
	for _, c := range components {
		fmt.Fprintf(&b, "import { %s } from './components/%s';\n", c.name, c.name)
	}
	if len(components) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("export default function App() {\n  return (\n")
	fmt.Fprintf(&b, "    <main className=\"%s\">\n", joinClasses("p-6 font-sans", theme.Resolve(theme.Body, pt.Theme)))
	b.WriteString("      <h1 className=\"text-2xl font-bold mb-4\">" + pageHeading + "</h1>\n")
	for _, c := range components {
		fmt.Fprintf(&b, "      <section className=\"mb-8\">\n        <%s />\n      </section>\n", c.name)
	}
	b.WriteString("    </main>\n  );\n}\n")
	return b.String()
}

func (pt *ProjectTemplate) GetViteIndex() string {
	return `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Generated React App</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.tsx"></script>
  </body>
</html>
`
}

func (pt *ProjectTemplate) GetReactPackageJSON() string {
	return fmt.Sprintf(`{
  "name": "%s",
  "version": "1.0.0",
  "private": true,
  "scripts": {
    "dev": "vite",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^19.0.0",
    "react-dom": "^19.0.0"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.3.4",
    "vite": "^6.0.0",
    "tailwindcss": "^3.4.17",
    "postcss": "^8.4.0",
    "autoprefixer": "^10.4.0"
  }
}
`, reactPackageName)
}

func (pt *ProjectTemplate) GetViteConfig() string {
	return `import { defineConfig } from 'vite';
import react from '@vitejs/plugin-react';

export default defineConfig({
  plugins: [react()],
});
`
}

func (pt *ProjectTemplate) GetPostCSSConfig() string {
	return `module.exports = {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
};
`
}

func (pt *ProjectTemplate) GetTailwindConfig() string {
	return `module.exports = {
  content: ['./index.html', './src/**/*.{js,ts,jsx,tsx}'],
  theme: {
    extend: {},
  },
  plugins: [],
};
`
}

func (pt *ProjectTemplate) GetStylesheet() string {
	return `@tailwind base;
@tailwind components;
@tailwind utilities;
`
}

func (pt *ProjectTemplate) GetReactMain() string {
	return `import React from 'react';
import ReactDOM from 'react-dom/client';
import App from './App';
import './index.css';

ReactDOM.createRoot(document.getElementById('root')!).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
);
`
}
