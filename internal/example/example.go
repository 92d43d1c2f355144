// Package example holds the sample source preloaded by the CLI demo
// mode and the web playground.
package example

// Source is a small but representative SwiftUI snippet: containers,
// custom views, a conditional, a ForEach, and modifier chains.
const Source = `import SwiftUI

struct ContentView: View {
    @State private var showGreeting = true

    var body: some View {
        NavigationStack {
            VStack(spacing: 16) {
                if showGreeting {
                    GreetingCard(name: "world")
                } else {
                    Text("Greeting hidden")
                        .font(.caption)
                        .foregroundColor(.secondary)
                }
                FruitList()
                Spacer()
            }
            .padding()
            .navigationTitle("swiftlens demo")
        }
    }
}

struct GreetingCard: View {
    let name: String

    var body: some View {
        HStack {
            Image(systemName: "hand.wave")
            Text("Hello, \(name)!")
                .font(.title2)
        }
        .padding()
        .background(Color.yellow.opacity(0.2))
        .cornerRadius(12)
    }
}

struct FruitList: View {
    let fruits = ["Apple", "Banana", "Cherry"]

    var body: some View {
        List {
            ForEach(fruits, id: \.self) { fruit in
                Label(fruit, systemImage: "leaf")
            }
        }
    }
}
`
