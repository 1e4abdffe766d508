package render

const blockVertexShader = `
#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;

uniform mat4 mvp;
uniform mat4 matModel;

out vec2 fragTexCoord;
out vec4 fragColor;
out vec3 fragNormal;
out vec3 fragWorldPos;

void main() {
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    fragNormal = mat3(matModel) * vertexNormal;
    fragWorldPos = (matModel * vec4(vertexPosition, 1.0)).xyz;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// Variante instanciada: a matriz do modelo chega como atributo por instância
// (convenção do raylib: attrib "instanceTransform" no slot MATRIX_MODEL).
const blockInstancedVertexShader = `
#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;
in mat4 instanceTransform;

uniform mat4 mvp;

out vec2 fragTexCoord;
out vec4 fragColor;
out vec3 fragNormal;
out vec3 fragWorldPos;

void main() {
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    fragNormal = mat3(instanceTransform) * vertexNormal;
    vec4 worldPos = instanceTransform * vec4(vertexPosition, 1.0);
    fragWorldPos = worldPos.xyz;
    gl_Position = mvp * worldPos;
}
`

const blockFragmentShader = `
#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
in vec3 fragNormal;
in vec3 fragWorldPos;

uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform float alphaCutoff;
uniform float opacity;
uniform float emissive;

#define MAX_LIGHTS 16
uniform float lightCount;
uniform vec3 lightPos[MAX_LIGHTS];
uniform vec3 lightColor[MAX_LIGHTS];
uniform float lightRadius[MAX_LIGHTS];

out vec4 finalColor;

void main() {
    vec4 texelColor = texture(texture0, fragTexCoord);
    if (texelColor.a < alphaCutoff) discard;

    vec4 color = texelColor * fragColor * colDiffuse;

    if (emissive < 0.5) {
        // Sol fixo + ambiente
        vec3 normal = normalize(fragNormal);
        vec3 sunDir = normalize(vec3(0.5, 1.0, 0.3));
        float diff = max(dot(normal, sunDir), 0.0);
        vec3 light = vec3(0.45) + vec3(0.55) * diff;

        // Luzes pontuais (lanternas)
        for (int i = 0; i < MAX_LIGHTS; i++) {
            if (float(i) >= lightCount) break;
            vec3 toLight = lightPos[i] - fragWorldPos;
            float dist = length(toLight);
            float atten = clamp(1.0 - dist / lightRadius[i], 0.0, 1.0);
            atten *= atten;
            float pointDiff = max(dot(normal, toLight / max(dist, 0.001)), 0.2);
            light += lightColor[i] * atten * pointDiff;
        }

        color.rgb *= min(light, vec3(1.4));
    }

    color.a *= opacity;
    finalColor = color;
}
`
