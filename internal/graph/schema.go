// Package graph binds the catalog operations to a GraphQL schema. The
// executable schema is built once at startup; resolvers dispatch into the
// core services with the request identity passed explicitly.
package graph

// Schema is the full operation surface. Identity is carried out-of-band as
// a bearer credential, never as a field argument.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		products(category: String, brand: String, minPrice: Float, maxPrice: Float, sortBy: String, limit: Int, skip: Int): [Product!]!
		me: User!
	}

	type Mutation {
		register(username: String!, password: String!, isAdmin: Boolean): String!
		login(username: String!, password: String!): String!
		addProduct(name: String!, price: Float!, description: String, category: String, brand: String, rating: Float): Product!
		updateProduct(id: ID!, name: String, description: String, price: Float, category: String, brand: String, rating: Float): Product!
		deleteProduct(id: ID!): String!
	}

	type Product {
		id: ID!
		name: String!
		description: String
		price: Float!
		category: String
		brand: String
		rating: Float
	}

	type User {
		id: ID!
		username: String!
		isAdmin: Boolean!
	}
`
