package service

import "strings"

// degradedResponse is served when the model call itself fails.
const degradedResponse = "I'm having trouble connecting to my AI brain right now. Let me give you a helpful response anyway!\n\n" +
	"What topic would you like to explore? I can help with:\n" +
	"- JavaScript fundamentals\n" +
	"- React development\n" +
	"- TypeScript\n" +
	"- And much more!"

// fallbackResponse answers without a configured model, keyed on a few topics
// the curriculum covers.
func fallbackResponse(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "closure"):
		return "**Closures in JavaScript** 🎯\n\n" +
			"A closure is a function that has access to variables from its outer (enclosing) scope, even after that outer function has returned.\n\n" +
			"```javascript\n" +
			"function outer() {\n" +
			"  let count = 0;\n" +
			"  return function inner() {\n" +
			"    count++;\n" +
			"    return count;\n" +
			"  };\n" +
			"}\n\n" +
			"const counter = outer();\n" +
			"counter(); // 1\n" +
			"counter(); // 2\n" +
			"```\n\n" +
			"Closures are powerful for:\n" +
			"- **Data privacy** - Creating private variables\n" +
			"- **State persistence** - Maintaining state between calls\n" +
			"- **Function factories** - Creating specialized functions\n\n" +
			"Would you like me to explain more with examples?"

	case strings.Contains(lower, "hook") || strings.Contains(lower, "react"):
		return "**React Hooks Explained** ⚛️\n\n" +
			"Hooks are functions that let you use state and other React features in functional components.\n\n" +
			"**useState** - For state management\n" +
			"```javascript\n" +
			"const [count, setCount] = useState(0);\n" +
			"```\n\n" +
			"**useEffect** - For side effects\n" +
			"```javascript\n" +
			"useEffect(() => {\n" +
			"  document.title = `Count: ${count}`;\n" +
			"}, [count]);\n" +
			"```\n\n" +
			"**Key Rules:**\n" +
			"1. Only call hooks at the top level\n" +
			"2. Only call hooks from React functions\n\n" +
			"Need help with a specific hook?"

	case strings.Contains(lower, "typescript") || strings.Contains(lower, "types"):
		return "**TypeScript Basics** 📘\n\n" +
			"TypeScript adds static typing to JavaScript, helping catch errors early!\n\n" +
			"```typescript\n" +
			"// Basic types\n" +
			"let name: string = \"LearnBotX\";\n" +
			"let age: number = 1;\n" +
			"let isActive: boolean = true;\n\n" +
			"// Arrays\n" +
			"let skills: string[] = [\"React\", \"Node\"];\n\n" +
			"// Interfaces\n" +
			"interface User {\n" +
			"  name: string;\n" +
			"  email: string;\n" +
			"  level?: string; // optional\n" +
			"}\n" +
			"```\n\n" +
			"TypeScript helps you:\n" +
			"- Catch bugs at compile time 🐛\n" +
			"- Better IDE autocomplete 💡\n" +
			"- Self-documenting code 📝\n\n" +
			"What aspect would you like to explore?"

	default:
		return "Great question! 🚀\n\n" +
			"I'm here to help you learn programming and web development. I can assist with:\n\n" +
			"- **JavaScript** - ES6+, closures, async/await\n" +
			"- **React** - Components, hooks, state management\n" +
			"- **TypeScript** - Types, interfaces, generics\n" +
			"- **Node.js** - Express, APIs, databases\n" +
			"- **And more!**\n\n" +
			"What would you like to learn about today?"
	}
}
